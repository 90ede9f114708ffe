package tagspec

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// splitFields splits a specification line on top-level commas.
// Double quotes keep commas inside a field; fields are whitespace-trimmed
// and empty fields are dropped, so trailing or doubled commas yield nothing.
func splitFields(s string) []string {
	out := make([]string, 0, 8)

	start := 0
	quoted := false

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted

		case ',':
			if quoted {
				continue
			}

			if f := strings.TrimSpace(s[start:i]); f != "" {
				out = append(out, f)
			}
			start = i + 1
		}
	}

	if f := strings.TrimSpace(s[start:]); f != "" {
		out = append(out, f)
	}

	return out
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

// isUint reports whether s is a plain base-10 non-negative integer.
func isUint(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
