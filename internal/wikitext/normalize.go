// Package wikitext implements low-level scanning and cleanup of MediaWiki
// markup. Everything in this package is a pure function over strings; no
// I/O, no state shared between calls.
package wikitext

import (
	"regexp"
	"strings"
)

var (
	commentRegex    = regexp.MustCompile(`(?s)<!--.*?-->`)
	brRegex         = regexp.MustCompile(`(?i)<br\s*/?>`)
	refRegex        = regexp.MustCompile(`(?is)<ref.*?>.*?</ref>`)
	refSelfRegex    = regexp.MustCompile(`(?i)<ref\s+name=.*?\s*/>`)
	htmlTagRegex    = regexp.MustCompile(`<[a-zA-Z/][^>]*>`)
	wikiLinkRegex   = regexp.MustCompile(`\[\[(?:[^|\]]+\|)?([^\]]+)\]\]`)
)

// Clean strips common wiki markup and HTML from a value, leaving plain
// text: templates are reduced to their content, links to their display
// text, comments and ref/HTML tags removed.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = commentRegex.ReplaceAllString(s, "")
	s = flattenTemplates(s)
	s = wikiLinkRegex.ReplaceAllString(s, "$1")
	s = brRegex.ReplaceAllString(s, " ")
	s = refRegex.ReplaceAllString(s, "")
	s = refSelfRegex.ReplaceAllString(s, "")
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}

// StripLinks reduces [[Page|Text]] to Text and [[Page]] to Page without
// touching anything else. Used for fields like hit level where template
// and tag handling differs from Clean.
func StripLinks(s string) string {
	return wikiLinkRegex.ReplaceAllString(s, "$1")
}

// flattenTemplates reduces every {{...}} block to plain text using a
// brace-depth scan. {{Name}} becomes Name, {{Name|value}} becomes value
// (everything after the first top-level pipe). Nested templates are
// flattened innermost-first. A regex cannot balance arbitrary nesting,
// hence the explicit scanner.
func flattenTemplates(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], "{{") {
			b.WriteByte(s[i])
			i++
			continue
		}
		end, ok := MatchBraces(s, i)
		if !ok {
			// Unbalanced: emit the braces verbatim and move on.
			b.WriteString("{{")
			i += 2
			continue
		}
		inner := flattenTemplates(s[i+2 : end])
		if pipe := strings.IndexByte(inner, '|'); pipe >= 0 {
			b.WriteString(inner[pipe+1:])
		} else {
			b.WriteString(inner)
		}
		i = end + 2
	}
	return b.String()
}

// MatchBraces returns the index of the "}}" closing the "{{" at start,
// accounting for nested pairs. ok is false when the block never closes.
func MatchBraces(s string, start int) (end int, ok bool) {
	depth := 0
	for i := start; i < len(s); i++ {
		if strings.HasPrefix(s[i:], "{{") {
			depth++
			i++
			continue
		}
		if strings.HasPrefix(s[i:], "}}") {
			depth--
			if depth == 0 {
				return i, true
			}
			i++
		}
	}
	return 0, false
}
