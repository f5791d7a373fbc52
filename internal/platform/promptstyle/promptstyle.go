package promptstyle

import "strings"

const marker = "KINETIC_PROMPT_STYLE_V1"

// ApplySystem prefixes a system prompt with the shared output guidance. It is
// idempotent.
func ApplySystem(system string, mode string) string {
	base := strings.TrimSpace(system)
	if base == "" || strings.Contains(base, marker) {
		return base
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString("\nYou write on-screen copy for short-form vertical videos.")
	b.WriteString("\nFollow the system and user instructions precisely.")
	b.WriteString("\nNever invent product claims that are not in the input.")
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "json":
		b.WriteString("\nReturn a single JSON object that conforms to the schema and contains no extra keys.")
	default:
		b.WriteString("\nBe concise.")
	}
	b.WriteString("\n---\n")
	b.WriteString(base)
	return b.String()
}
