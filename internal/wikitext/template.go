package wikitext

import "strings"

// FindTemplates scans text for every {{name|...}} invocation and returns
// the raw parameter-list substring of each occurrence in document order.
// The name match is case-insensitive and tolerates whitespace between the
// name and the first pipe. Occurrences whose braces never balance are
// skipped. Nested {{...}} blocks inside parameter values are kept intact.
func FindTemplates(text, name string) []string {
	var out []string
	lower := strings.ToLower(text)
	needle := "{{" + strings.ToLower(name)
	for i := 0; i < len(text); {
		j := strings.Index(lower[i:], needle)
		if j < 0 {
			break
		}
		start := i + j
		// The name must end here: next non-space char is '|' or '}'.
		k := start + len(needle)
		for k < len(text) && (text[k] == ' ' || text[k] == '\t' || text[k] == '\n') {
			k++
		}
		if k >= len(text) || (text[k] != '|' && text[k] != '}') {
			i = start + 2
			continue
		}
		end, ok := MatchBraces(text, start)
		if !ok {
			// Unbalanced template, skip past the opener.
			i = start + 2
			continue
		}
		if text[k] == '|' {
			out = append(out, text[k+1:end])
		} else {
			out = append(out, "")
		}
		i = end + 2
	}
	return out
}
