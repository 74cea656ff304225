package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rc := resend.NewClient("re_test_key")
	baseURL, err := url.Parse(server.URL + "/")
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}
	rc.BaseURL = baseURL

	logger := zerolog.Nop()
	return NewClientWithResend(rc, &logger)
}

func TestClientSend(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	})

	err := client.Send(context.Background(), &Message{
		From:    "Portfolio Contact <onboarding@resend.dev>",
		To:      "owner@example.com",
		Subject: "Portfolio Message: Hello",
		HTML:    "<p>Hi</p>",
		ReplyTo: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/emails" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotAuth != "Bearer re_test_key" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotBody["subject"] != "Portfolio Message: Hello" {
		t.Fatalf("unexpected subject: %v", gotBody["subject"])
	}
	if gotBody["html"] != "<p>Hi</p>" {
		t.Fatalf("unexpected html: %v", gotBody["html"])
	}
	if !strings.Contains(toString(gotBody["reply_to"]), "ada@example.com") {
		t.Fatalf("unexpected reply_to: %v", gotBody["reply_to"])
	}
	to, _ := gotBody["to"].([]any)
	if len(to) != 1 || to[0] != "owner@example.com" {
		t.Fatalf("unexpected recipients: %v", gotBody["to"])
	}
}

func TestClientSendProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"statusCode":401,"name":"validation_error","message":"API key is invalid"}`))
	})

	err := client.Send(context.Background(), &Message{
		From:    "Portfolio Contact <onboarding@resend.dev>",
		To:      "owner@example.com",
		Subject: "Portfolio Message: Hello",
		HTML:    "<p>Hi</p>",
		ReplyTo: "ada@example.com",
	})
	if err == nil {
		t.Fatalf("expected provider error")
	}
	if !strings.HasPrefix(err.Error(), "failed to send email") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
