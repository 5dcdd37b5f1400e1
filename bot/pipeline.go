package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"salon-bot/models"
)

// Responder produces a free-form reply for messages no rule matched.
// Implementations must fail closed: a backend problem becomes NoReply,
// never a user-visible error.
type Responder interface {
	Respond(ctx context.Context, text string) (Result, error)
}

// Sender delivers the chosen reply to the messaging channel.
type Sender interface {
	SendText(ctx context.Context, recipientID, text string) error
}

// MessageLog records traffic for operator review. Best-effort; failures
// never affect dispatch.
type MessageLog interface {
	Record(ctx context.Context, rec models.MessageRecord) error
}

// Outcome is the terminal state of one dispatch cycle.
type Outcome int

const (
	OutcomeDropped Outcome = iota
	OutcomeSuppressed
	OutcomeSent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDropped:
		return "dropped"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeSent:
		return "sent"
	}
	return "unknown"
}

const (
	respondTimeout = 30 * time.Second
	sendTimeout    = 15 * time.Second
)

// Pipeline runs greeting → intent → assistant for each inbound message,
// short-circuiting on the first match. Every invocation is independent;
// there is no cross-message state.
type Pipeline struct {
	greetings *GreetingMatcher
	router    *Router
	responder Responder
	sender    Sender
	log       MessageLog
}

// NewPipeline wires the dispatch pipeline. log may be nil to disable
// the audit trail.
func NewPipeline(catalog *Catalog, responder Responder, sender Sender, log MessageLog) *Pipeline {
	return &Pipeline{
		greetings: NewGreetingMatcher(catalog),
		router:    NewRouter(catalog),
		responder: responder,
		sender:    sender,
		log:       log,
	}
}

// Dispatch classifies one inbound message and sends the chosen reply.
// Echo and empty messages are dropped before any classification runs.
func (p *Pipeline) Dispatch(ctx context.Context, msg models.InboundMessage) Outcome {
	if msg.IsEcho {
		return OutcomeDropped
	}
	if msg.SenderID == "" || strings.TrimSpace(msg.Text) == "" {
		return OutcomeDropped
	}

	p.record(ctx, msg.SenderID, models.DirectionInbound, msg.Text, "received")

	lang := Detect(msg.Text)

	if reply, ok := p.greetings.Match(msg.Text, lang); ok {
		return p.send(ctx, msg.SenderID, reply, "greeting")
	}

	if reply, ok := p.router.Route(msg.Text); ok {
		return p.send(ctx, msg.SenderID, reply, "intent")
	}

	respondCtx, cancel := context.WithTimeout(ctx, respondTimeout)
	defer cancel()

	result, err := p.responder.Respond(respondCtx, msg.Text)
	if err != nil {
		slog.Error("Assistant call failed, staying silent", "error", err, "senderID", msg.SenderID)
		result = NoReply()
	}
	if result.Silent {
		p.record(ctx, msg.SenderID, models.DirectionOutbound, "", "suppressed")
		return OutcomeSuppressed
	}

	return p.send(ctx, msg.SenderID, result.Text, "assistant")
}

// send delivers the reply at most once. Transport failures are logged
// and dropped, never retried and never surfaced to the user.
func (p *Pipeline) send(ctx context.Context, recipientID, text, stage string) Outcome {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := p.sender.SendText(sendCtx, recipientID, text); err != nil {
		slog.Error("Failed to send reply",
			"error", err,
			"recipientID", recipientID,
			"stage", stage,
		)
	}

	p.record(ctx, recipientID, models.DirectionOutbound, text, stage)
	return OutcomeSent
}

func (p *Pipeline) record(ctx context.Context, senderID, direction, text, stage string) {
	if p.log == nil {
		return
	}
	rec := models.MessageRecord{
		SenderID:  senderID,
		Direction: direction,
		Text:      text,
		Stage:     stage,
		Timestamp: time.Now(),
	}
	if err := p.log.Record(ctx, rec); err != nil {
		slog.Warn("Failed to record message", "error", err, "senderID", senderID)
	}
}
