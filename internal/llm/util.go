// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// StripFence removes a markdown code fence wrapper from generated text.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
//
// Rule: if the trimmed text starts with a triple backtick, split on the
// backtick delimiters and take the content between the first pair; when that
// content starts with a case-insensitive "json" tag, drop the tag and the
// whitespace after it. Text without a leading fence passes through trimmed.
func StripFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}

	parts := strings.SplitN(t, "```", 3)
	if len(parts) < 2 {
		return t
	}

	inner := strings.TrimSpace(parts[1])
	if len(inner) >= 4 && strings.EqualFold(inner[:4], "json") {
		inner = strings.TrimSpace(inner[4:])
	}
	return inner
}
