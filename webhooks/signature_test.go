package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"object":"page","entry":[]}`)

	tests := []struct {
		name   string
		secret string
		header string
		want   bool
	}{
		{"valid signature", "app-secret", sign("app-secret", body), true},
		{"wrong secret", "app-secret", sign("other-secret", body), false},
		{"missing header", "app-secret", "", false},
		{"wrong prefix", "app-secret", "sha1=abc", false},
		{"garbage digest", "app-secret", "sha256=nothex", false},
		{"no secret configured skips verification", "", "", true},
		{"no secret ignores header", "", "sha256=whatever", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifySignature(tt.secret, tt.header, body); got != tt.want {
				t.Errorf("VerifySignature(%q, %q) = %v, want %v", tt.secret, tt.header, got, tt.want)
			}
		})
	}
}

func TestVerifySignatureDetectsTamperedBody(t *testing.T) {
	original := []byte(`{"object":"page"}`)
	header := sign("app-secret", original)

	if VerifySignature("app-secret", header, []byte(`{"object":"evil"}`)) {
		t.Error("tampered body must not verify")
	}
}
