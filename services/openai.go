package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"salon-bot/bot"
	"salon-bot/config"
)

const openAIURL = "https://api.openai.com/v1/chat/completions"

// noReplySentinel is the reserved token the assistant emits for
// out-of-domain questions. It is parsed into bot.NoReply here and never
// compared anywhere else.
const noReplySentinel = "NO_REPLY"

// ChatRequest represents the request to the OpenAI chat completions API
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatMessage represents a message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse represents the response from the OpenAI API
type ChatResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// OpenAIResponder answers unmatched messages with a single stateless
// chat completion under a fixed salon persona. It implements
// bot.Responder and fails closed: every backend problem becomes NoReply.
type OpenAIResponder struct {
	apiKey       string
	model        string
	systemPrompt string
	client       *http.Client
	baseURL      string
}

func NewOpenAIResponder(apiKey string, biz config.Business) *OpenAIResponder {
	return &OpenAIResponder{
		apiKey:       apiKey,
		model:        "gpt-4o-mini",
		systemPrompt: buildSystemPrompt(biz),
		client:       &http.Client{Timeout: 30 * time.Second},
		baseURL:      openAIURL,
	}
}

// buildSystemPrompt fixes the salon persona, the link-usage rules, the
// language-mirroring rule and the sentinel contract. The user text is
// the only dynamic input per call.
func buildSystemPrompt(biz config.Business) string {
	return fmt.Sprintf(`Ты — вежливый и внимательный ассистент салона массажа «%s».
Отвечай дружелюбно и по делу, без лишней воды. Используй максимум 2 уместных эмодзи.

📌 ОБЩИЕ ПРАВИЛА:
1) Если вопрос про запись, цены, услуги или отзывы — всегда указывай ссылку:
   «Смотрите актуальные цены, свободные окошки и отзывы по ссылке 👉 %s»
2) Если клиент спрашивает про адрес — давай полный адрес + ссылку на Google Maps:
   «%s
   👉 %s»
3) График работы:
   «Мы открыты с понедельника по субботу, %s».
4) Язык:
   - Если клиент пишет на турецком — отвечай на турецком.
   - Если на русском — отвечай на русском.
   - Если язык непонятен — ответь сначала по-турецки, ниже по-русски.
5) Если клиент благодарит — отвечай:
   «Спасибо вам 🤍 Ждём снова в %s».
6) Если вопрос не связан с салоном, услугами, ценами, адресом, записью или благодарностью — НЕ отвечай вообще.
   В таком случае верни строго строку: %s
7) Никогда не придумывай цены и услуги — отправляй только на ссылку с онлайн-записью.`,
		biz.Name, biz.BookingLink, biz.Address, biz.MapsLink, biz.Hours, biz.Name, noReplySentinel)
}

// Respond sends the user text to OpenAI and parses the raw result into
// a tagged reply-or-silence value.
func (r *OpenAIResponder) Respond(ctx context.Context, text string) (bot.Result, error) {
	if r.apiKey == "" {
		slog.Warn("OpenAI API key not configured, staying silent")
		return bot.NoReply(), nil
	}

	requestBody := ChatRequest{
		Model: r.model,
		Messages: []ChatMessage{
			{Role: "system", Content: r.systemPrompt},
			{Role: "user", Content: strings.TrimSpace(text)},
		},
		Temperature: 0.2,
		MaxTokens:   350,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		slog.Error("Failed to marshal OpenAI request", "error", err)
		return bot.NoReply(), nil
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		slog.Error("Failed to build OpenAI request", "error", err)
		return bot.NoReply(), nil
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		slog.Error("OpenAI request failed", "error", err)
		return bot.NoReply(), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Failed to read OpenAI response", "error", err)
		return bot.NoReply(), nil
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("OpenAI API error", "status", resp.StatusCode, "body", string(body))
		return bot.NoReply(), nil
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		slog.Error("Failed to parse OpenAI response", "error", err)
		return bot.NoReply(), nil
	}

	if len(chatResp.Choices) == 0 {
		slog.Error("OpenAI returned no choices")
		return bot.NoReply(), nil
	}

	slog.Info("Assistant response generated",
		"promptTokens", chatResp.Usage.PromptTokens,
		"completionTokens", chatResp.Usage.CompletionTokens,
	)

	return parseResult(chatResp.Choices[0].Message.Content), nil
}

// parseResult converts the raw backend string into the tagged variant.
// The sentinel comparison is exact after trimming.
func parseResult(raw string) bot.Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == noReplySentinel {
		return bot.NoReply()
	}
	return bot.Reply(trimmed)
}
