package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/advocatehub/internal/app/system/htmlsanitize"
)

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Hello, World!"); got != "Hello, World!" {
		t.Errorf("plain text should pass through, got %q", got)
	}
}

func TestSanitize_KeepsFormatting(t *testing.T) {
	input := "<p><strong>Urgent</strong> school fee due <em>Friday</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("safe markup should be preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	if got := htmlsanitize.Sanitize(input); got != "<p>Hello</p>" {
		t.Errorf("script should be removed, got %q", got)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>School supplies</p>", "School supplies"},
		{"  <strong>fee</strong>  ", "fee"},
	}

	for _, tt := range tests {
		if got := htmlsanitize.Strip(tt.input); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
