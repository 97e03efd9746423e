package render

// EscapeQuotes backslash-escapes double quotes so arbitrary symbol strings
// embed safely in structured text. Inputs without quotes come back
// unchanged with no allocation.
func EscapeQuotes(s string) string {
	quoteCount := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			quoteCount++
		}
	}
	if quoteCount == 0 {
		return s
	}

	escaped := make([]byte, 0, len(s)+quoteCount)
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, s[i])
	}
	return string(escaped)
}
