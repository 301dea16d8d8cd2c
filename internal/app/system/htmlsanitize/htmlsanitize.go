// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize wraps bluemonday policies used when user-entered rich
// text has to leave the html/template escaping context (notification email
// bodies, text/plain derivations). Stored fields are never rewritten.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps common formatting markup (p, strong, em, lists, safe links)
// and strips scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// Strip removes all markup, returning plain text. Used when deriving the
// text/plain variant of an email from user-entered content.
func Strip(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
