package envutil

import "testing"

func TestLookupsFallBackToDefaults(t *testing.T) {
	t.Setenv("ENVUTIL_INT", "nope")
	t.Setenv("ENVUTIL_FLOAT", "")
	t.Setenv("ENVUTIL_BOOL", "maybe")
	t.Setenv("ENVUTIL_STR", "   ")

	if got := Int("ENVUTIL_INT", 7); got != 7 {
		t.Fatalf("Int: want=7 got=%d", got)
	}
	if got := Float("ENVUTIL_FLOAT", 0.5); got != 0.5 {
		t.Fatalf("Float: want=0.5 got=%v", got)
	}
	if got := Bool("ENVUTIL_BOOL", true); !got {
		t.Fatalf("Bool: want=true got=%v", got)
	}
	if got := String("ENVUTIL_STR", "def"); got != "def" {
		t.Fatalf("String: want=def got=%q", got)
	}
}

func TestLookupsParseValues(t *testing.T) {
	t.Setenv("ENVUTIL_INT", " 42 ")
	t.Setenv("ENVUTIL_FLOAT", "0.25")
	t.Setenv("ENVUTIL_BOOL", "off")
	t.Setenv("ENVUTIL_STR", "redis")

	if got := Int("ENVUTIL_INT", 0); got != 42 {
		t.Fatalf("Int: want=42 got=%d", got)
	}
	if got := Float("ENVUTIL_FLOAT", 0); got != 0.25 {
		t.Fatalf("Float: want=0.25 got=%v", got)
	}
	if got := Bool("ENVUTIL_BOOL", true); got {
		t.Fatalf("Bool: want=false got=%v", got)
	}
	if got := String("ENVUTIL_STR", ""); got != "redis" {
		t.Fatalf("String: want=redis got=%q", got)
	}
}
