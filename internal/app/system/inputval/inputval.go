// Package inputval validates and sanitizes untrusted admin input.
//
// Fields arrive as decoded JSON (any), so strings are string, numbers are
// float64, booleans are bool, and arrays are []any. Each helper reports
// whether the value was acceptable; callers drop fields that fail validation
// from partial updates and only hard-reject when a field is required.
package inputval

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brightforge/studiohub/internal/app/system/htmlsanitize"
)

// escaper neutralizes the characters that break out of HTML attribute and
// element contexts. Ampersands are left alone so already-escaped content
// survives repeated saves.
var escaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeString escapes < > " ' in s.
func EscapeString(s string) string {
	return escaper.Replace(s)
}

// String validates v as a plain-text string of at most max characters,
// returning the trimmed, HTML-escaped value.
func String(v any, max int) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	if len(s) > max {
		return "", false
	}
	return strings.TrimSpace(EscapeString(s)), true
}

// RichText validates v as markup-bearing text of at most max characters.
// The value is sanitized (scripts and event handlers stripped) rather than
// escaped, because it renders as raw HTML. Scoped to about-page paragraphs;
// do not reach for this for ordinary fields.
func RichText(v any, max int) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	if len(s) > max {
		return "", false
	}
	return strings.TrimSpace(htmlsanitize.Sanitize(s)), true
}

// Number coerces v to a float64, accepting JSON numbers and numeric strings.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int coerces v to an integer via Number, rejecting fractional values.
func Int(v any) (int, bool) {
	f, ok := Number(v)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Bool accepts only an actual boolean; "true", 1, and friends are rejected.
func Bool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// StringSlice validates v as an array and sanitizes each element with the
// same escaping String applies, dropping elements that fail.
func StringSlice(v any, maxEach int) ([]string, bool) {
	out, ok := rawSlice(v)
	if !ok {
		return nil, false
	}
	clean := make([]string, 0, len(out))
	for _, el := range out {
		if s, ok := String(el, maxEach); ok {
			clean = append(clean, s)
		}
	}
	return clean, true
}

// RichTextSlice is StringSlice for markup-bearing elements (about paragraphs).
func RichTextSlice(v any, maxEach int) ([]string, bool) {
	out, ok := rawSlice(v)
	if !ok {
		return nil, false
	}
	clean := make([]string, 0, len(out))
	for _, el := range out {
		if s, ok := RichText(el, maxEach); ok {
			clean = append(clean, s)
		}
	}
	return clean, true
}

func rawSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = el
		}
		return out, true
	default:
		return nil, false
	}
}

// emailRe is a pragmatic RFC-5322-ish shape check: one local part, one @,
// one domain, no spaces, no leading/trailing/consecutive dots.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_\x60{|}~-]+(?:\.[A-Za-z0-9!#$%&'*+/=?^_\x60{|}~-]+)*@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*$`)

// IsValidEmail reports whether s looks like a deliverable address.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 254 {
		return false
	}
	return emailRe.MatchString(s)
}
