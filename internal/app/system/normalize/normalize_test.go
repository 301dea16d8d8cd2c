package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName_PreservesVerbatim(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Pat Jones", "Pat Jones"},
		{"  Pat Jones  ", "Pat Jones"},
		{"MARY-ANN o'neil", "MARY-ANN o'neil"},
		{"<script>alert(1)</script>", "<script>alert(1)</script>"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoleAndStatus(t *testing.T) {
	if got := Role("  Volunteer "); got != "volunteer" {
		t.Errorf("Role: got %q", got)
	}
	if got := Status(" ACTIVE"); got != "active" {
		t.Errorf("Status: got %q", got)
	}
	if got := AuthMethod("Google "); got != "google" {
		t.Errorf("AuthMethod: got %q", got)
	}
}
