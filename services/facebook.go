package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const fbGraphAPI = "https://graph.facebook.com/v21.0"

// MessengerSender delivers replies through the Facebook Graph API. It
// implements bot.Sender. A missing access token turns every send into a
// loud no-op instead of a crash.
type MessengerSender struct {
	accessToken string
	client      *http.Client
	baseURL     string
}

func NewMessengerSender(accessToken string) *MessengerSender {
	return &MessengerSender{
		accessToken: accessToken,
		client:      &http.Client{Timeout: 15 * time.Second},
		baseURL:     fbGraphAPI,
	}
}

// SendText sends a text reply to a Messenger recipient.
func (s *MessengerSender) SendText(ctx context.Context, recipientID, text string) error {
	if s.accessToken == "" {
		slog.Warn("PAGE_ACCESS_TOKEN is not set, dropping outbound message", "recipientID", recipientID)
		return nil
	}

	url := fmt.Sprintf("%s/me/messages?access_token=%s", s.baseURL, s.accessToken)

	payload := map[string]interface{}{
		"recipient": map[string]string{
			"id": recipientID,
		},
		"messaging_type": "RESPONSE",
		"message": map[string]string{
			"text": text,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("Failed to send messenger reply", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("failed to send message: %s", resp.Status)
	}

	return nil
}
