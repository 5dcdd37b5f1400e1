package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendTextPostsMessengerPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewMessengerSender("test-token")
	sender.baseURL = srv.URL

	if err := sender.SendText(context.Background(), "user-1", "Merhaba!"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotPath != "/me/messages?access_token=test-token" {
		t.Errorf("request path = %q", gotPath)
	}
	recipient, _ := gotBody["recipient"].(map[string]interface{})
	if recipient["id"] != "user-1" {
		t.Errorf("recipient = %v, want user-1", recipient)
	}
	message, _ := gotBody["message"].(map[string]interface{})
	if message["text"] != "Merhaba!" {
		t.Errorf("message text = %v, want Merhaba!", message)
	}
	if gotBody["messaging_type"] != "RESPONSE" {
		t.Errorf("messaging_type = %v, want RESPONSE", gotBody["messaging_type"])
	}
}

func TestSendTextWithoutTokenIsNoOp(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	sender := NewMessengerSender("")
	sender.baseURL = srv.URL

	if err := sender.SendText(context.Background(), "user-1", "Merhaba!"); err != nil {
		t.Fatalf("missing token must not error, got %v", err)
	}
	if called {
		t.Error("no request may be made without an access token")
	}
}

func TestSendTextReturnsErrorOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	}))
	defer srv.Close()

	sender := NewMessengerSender("bad-token")
	sender.baseURL = srv.URL

	if err := sender.SendText(context.Background(), "user-1", "Merhaba!"); err == nil {
		t.Error("expected error for non-200 response")
	}
}
