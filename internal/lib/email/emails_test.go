package email

import (
	"strings"
	"testing"
)

func TestNewContactMessage(t *testing.T) {
	msg, err := NewContactMessage("Portfolio Contact <onboarding@resend.dev>", "owner@example.com", ContactData{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Line1\nLine2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Subject != "Portfolio Message: Hello" {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	if msg.ReplyTo != "ada@example.com" {
		t.Fatalf("unexpected reply-to: %q", msg.ReplyTo)
	}
	if msg.To != "owner@example.com" {
		t.Fatalf("unexpected recipient: %q", msg.To)
	}
	for _, want := range []string{
		"<strong>Name:</strong> Ada",
		"<strong>Email:</strong> ada@example.com",
		"<strong>Subject:</strong> Hello",
		"Line1<br>Line2",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("expected html to contain %q, got:\n%s", want, msg.HTML)
		}
	}
}

func TestContactTemplateEmbedsValuesVerbatim(t *testing.T) {
	html, err := Render(TemplateContact, ContactData{
		Name:    "<b>Ada</b> & co",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<b>Ada</b> & co") {
		t.Fatalf("expected name to be embedded unescaped, got:\n%s", html)
	}
}

func TestLinebreaksCount(t *testing.T) {
	tests := []struct {
		in    string
		count int
	}{
		{"", 0},
		{"single line", 0},
		{"a\nb", 1},
		{"a\n\nb\n", 3},
		{"\r\n", 1},
	}
	for _, tt := range tests {
		out := Linebreaks(tt.in)
		if got := strings.Count(out, "<br>"); got != tt.count {
			t.Fatalf("Linebreaks(%q) inserted %d breaks, want %d", tt.in, got, tt.count)
		}
		if strings.Contains(out, "\n") {
			t.Fatalf("Linebreaks(%q) left a newline: %q", tt.in, out)
		}
	}
}

func TestPreviewDataRenders(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		if err != nil {
			t.Fatalf("template %s failed to render preview: %v", name, err)
		}
		if html == "" {
			t.Fatalf("template %s rendered empty", name)
		}
	}
}
