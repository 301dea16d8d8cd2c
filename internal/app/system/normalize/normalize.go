// internal/app/system/normalize/normalize.go

// Package normalize provides canonicalization helpers for user-entered
// identity fields. These run on lookup keys (emails, roles, statuses) only.
// Display fields such as a user's full name are trimmed but otherwise
// preserved verbatim.
package normalize

import "strings"

// Email lowercases and trims an email address for storage and lookup.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and nothing else. Case and interior
// content are preserved byte for byte.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// AuthMethod lowercases and trims an auth method label ("internal", "google").
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role lowercases and trims a role label.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status label.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
