// internal/app/system/status/status.go

// Package status defines the record status values shared by organizations,
// cases, and users across stores and templates.
package status

// Canonical status values.
const (
	Active   = "active"
	Disabled = "disabled"
	Closed   = "closed" // cases only
)

// IsValid reports whether s is a recognized user/organization status.
func IsValid(s string) bool {
	return s == Active || s == Disabled
}

// IsValidCase reports whether s is a recognized case status.
func IsValidCase(s string) bool {
	return s == Active || s == Closed
}
