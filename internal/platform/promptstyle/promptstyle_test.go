package promptstyle

import (
	"strings"
	"testing"
)

func TestApplySystemIsIdempotent(t *testing.T) {
	once := ApplySystem("Split the script into scenes.", "json")
	if !strings.HasPrefix(once, marker) {
		t.Fatalf("expected marker prefix, got %q", once)
	}
	if !strings.Contains(once, "conforms to the schema") {
		t.Fatalf("json guidance missing")
	}
	if twice := ApplySystem(once, "json"); twice != once {
		t.Fatalf("ApplySystem not idempotent")
	}
	if got := ApplySystem("  ", "json"); got != "" {
		t.Fatalf("blank system: want empty got=%q", got)
	}
}
