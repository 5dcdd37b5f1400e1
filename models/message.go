package models

import "time"

// InboundMessage is a single text message extracted from a webhook
// delivery. It is consumed once per dispatch cycle and never persisted.
type InboundMessage struct {
	SenderID string
	Text     string
	IsEcho   bool
}

// OutboundMessage is the reply handed to the Messenger transport.
type OutboundMessage struct {
	RecipientID string
	Text        string
}

// Message directions for the audit log.
const (
	DirectionInbound  = "in"
	DirectionOutbound = "out"
)

// MessageRecord is the write-only audit document for operator review.
// The pipeline never reads these back; replies carry no memory of
// earlier turns.
type MessageRecord struct {
	SenderID  string    `bson:"sender_id" json:"sender_id"`
	Direction string    `bson:"direction" json:"direction"`
	Text      string    `bson:"text" json:"text"`
	Stage     string    `bson:"stage" json:"stage"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
