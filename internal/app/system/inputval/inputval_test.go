package inputval_test

import (
	"strings"
	"testing"

	"github.com/brightforge/studiohub/internal/app/system/inputval"
)

func TestString_EscapesMarkup(t *testing.T) {
	got, ok := inputval.String("<script>alert('x')</script>", 200)
	if !ok {
		t.Fatal("expected string to validate")
	}
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("expected angle brackets escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", got)
	}
	if !strings.Contains(got, "&#39;") {
		t.Errorf("expected single quote escaped, got %q", got)
	}
}

func TestString_TrimsWhitespace(t *testing.T) {
	got, ok := inputval.String("  hello  ", 100)
	if !ok || got != "hello" {
		t.Errorf("String = %q, %v; want %q, true", got, ok, "hello")
	}
}

func TestString_RejectsOverlong(t *testing.T) {
	if _, ok := inputval.String(strings.Repeat("a", 101), 100); ok {
		t.Error("expected maxLength+1 string rejected")
	}
	if _, ok := inputval.String(strings.Repeat("a", 100), 100); !ok {
		t.Error("expected string at maxLength accepted")
	}
}

func TestString_RejectsNonString(t *testing.T) {
	if _, ok := inputval.String(42.0, 100); ok {
		t.Error("expected number rejected as string")
	}
	if _, ok := inputval.String(nil, 100); ok {
		t.Error("expected nil rejected as string")
	}
}

func TestRichText_KeepsMarkup(t *testing.T) {
	got, ok := inputval.RichText("<p>We are <strong>BrightForge</strong>.</p>", 1000)
	if !ok {
		t.Fatal("expected rich text to validate")
	}
	if got != "<p>We are <strong>BrightForge</strong>.</p>" {
		t.Errorf("expected markup preserved, got %q", got)
	}
}

func TestRichText_StripsScript(t *testing.T) {
	got, ok := inputval.RichText("<p>Hi</p><script>alert(1)</script>", 1000)
	if !ok {
		t.Fatal("expected rich text to validate")
	}
	if strings.Contains(got, "script") {
		t.Errorf("expected script stripped, got %q", got)
	}
}

func TestRichText_RejectsOverlong(t *testing.T) {
	if _, ok := inputval.RichText(strings.Repeat("a", 1001), 1000); ok {
		t.Error("expected over-limit rich text rejected")
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"json number", 42.5, 42.5, true},
		{"int", 7, 7, true},
		{"numeric string", "2024", 2024, true},
		{"padded numeric string", " 12 ", 12, true},
		{"non-numeric string", "abc", 0, false},
		{"empty string", "", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inputval.Number(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Number(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInt_RejectsFractional(t *testing.T) {
	if _, ok := inputval.Int(3.5); ok {
		t.Error("expected fractional value rejected")
	}
	got, ok := inputval.Int(2024.0)
	if !ok || got != 2024 {
		t.Errorf("Int(2024.0) = %d, %v; want 2024, true", got, ok)
	}
}

func TestBool_Strict(t *testing.T) {
	if _, ok := inputval.Bool("true"); ok {
		t.Error("expected string rejected as boolean")
	}
	if _, ok := inputval.Bool(1.0); ok {
		t.Error("expected number rejected as boolean")
	}
	got, ok := inputval.Bool(true)
	if !ok || !got {
		t.Errorf("Bool(true) = %v, %v; want true, true", got, ok)
	}
	got, ok = inputval.Bool(false)
	if !ok || got {
		t.Errorf("Bool(false) = %v, %v; want false, true", got, ok)
	}
}

func TestStringSlice_SanitizesElements(t *testing.T) {
	got, ok := inputval.StringSlice([]any{"Go", "<b>React</b>", " Postgres "}, 100)
	if !ok {
		t.Fatal("expected array to validate")
	}
	want := []string{"Go", "&lt;b&gt;React&lt;/b&gt;", "Postgres"}
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStringSlice_DropsBadElements(t *testing.T) {
	got, ok := inputval.StringSlice([]any{"ok", 42.0, strings.Repeat("x", 200)}, 100)
	if !ok {
		t.Fatal("expected array to validate")
	}
	if len(got) != 1 || got[0] != "ok" {
		t.Errorf("got %v, want only the valid element", got)
	}
}

func TestStringSlice_RejectsNonArray(t *testing.T) {
	if _, ok := inputval.StringSlice("not an array", 100); ok {
		t.Error("expected non-array rejected")
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"a@b.co", true},
		{"admin@mailserver", true},

		{"", false},
		{"   ", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},
		{"User Name <user@example.com>", false},
		{"user @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := inputval.IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
