// Package htmlsanitize strips dangerous markup from admin-authored rich text.
//
// About-page paragraphs render as raw HTML on the public site, so they are
// deliberately not entity-escaped. Instead they pass through a bluemonday
// UGC policy that keeps formatting tags and removes scripts, event handler
// attributes, and javascript: URLs. This exemption is scoped to rich-text
// fields only; everything else goes through inputval escaping.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe markup removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
