package wikitext

import "strings"

// SplitParams splits a raw template parameter list on pipes at brace
// depth zero. Depth is tracked by counting individual brace characters
// and clamped at zero, so a stray closing brace cannot push the scan
// negative. Each segment is returned trimmed.
func SplitParams(raw string) []string {
	var params []string
	var current strings.Builder
	depth := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '|' && depth == 0 {
			params = append(params, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteByte(c)
		switch c {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	if current.Len() > 0 {
		params = append(params, strings.TrimSpace(current.String()))
	}
	return params
}

// ParseParams parses a raw parameter list into a map of lower-cased key
// to trimmed value. Only the first '=' in a parameter separates key from
// value; later ones stay in the value. Positional parameters (no '=')
// carry no key and are dropped here; use SplitParams when positions
// matter. The returned id is the value of the "id" parameter, or "".
func ParseParams(raw string) (params map[string]string, id string) {
	params = make(map[string]string)
	for _, p := range SplitParams(raw) {
		eq := strings.IndexByte(p, '=')
		if eq < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(p[:eq]))
		value := strings.TrimSpace(p[eq+1:])
		if key == "" {
			continue
		}
		params[key] = value
		if key == "id" {
			id = value
		}
	}
	return params, id
}
