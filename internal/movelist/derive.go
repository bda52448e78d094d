package movelist

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/FottenSC/FrameData/internal/entities/tekken"
	"github.com/FottenSC/FrameData/internal/wikitext"
)

var (
	signedIntRegex = regexp.MustCompile(`[-+]?\d+`)
	digitsRegex    = regexp.MustCompile(`\d+`)
	parenRegex     = regexp.MustCompile(`\([^)]*\)`)
	linkRegex      = regexp.MustCompile(`\[\[(.*?)\]\]`)

	// Classification letters around frame values: i12, 15a, 8d, etc.
	leadingClassLetters  = "iIaAdDcCtT"
	trailingClassLetters = "aAdDcCtTgG"
)

// extractInt pulls the representative integer out of a frame data field:
// one leading/trailing classification letter is stripped, parenthesized
// content removed, ranges ("12~14") and multi-hit lists ("i10,i12") cut
// at the first value, then the first signed integer wins. Returns nil
// when nothing parses; absence is not zero.
func extractInt(s string) *int {
	cleaned := stripClassLetters(strings.TrimSpace(s))

	if v, ok := firstInt(cutFirstValue(parenRegex.ReplaceAllString(cleaned, ""))); ok {
		return &v
	}
	// A fully parenthesized value like "(+5)" would otherwise vanish;
	// retry with just the paren characters dropped.
	bare := strings.NewReplacer("(", "", ")", "").Replace(cleaned)
	if v, ok := firstInt(cutFirstValue(bare)); ok {
		return &v
	}
	return nil
}

func stripClassLetters(s string) string {
	if s != "" && strings.ContainsRune(leadingClassLetters, rune(s[0])) {
		s = s[1:]
	}
	if s != "" && strings.ContainsRune(trailingClassLetters, rune(s[len(s)-1])) {
		s = s[:len(s)-1]
	}
	return s
}

// cutFirstValue takes the substring before the first range or list
// separator.
func cutFirstValue(s string) string {
	s, _, _ = strings.Cut(s, "~")
	s, _, _ = strings.Cut(s, ",")
	return s
}

func firstInt(s string) (int, bool) {
	m := signedIntRegex.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// sumDamage sums every integer literal in a damage string, ignoring
// separators and parenthetical or negative markers. "10,15" is 25,
// "5(3)" is 8, anything without digits is 0.
func sumDamage(s string) int {
	total := 0
	for _, m := range digitsRegex.FindAllString(s, -1) {
		if v, err := strconv.Atoi(m); err == nil {
			total += v
		}
	}
	return total
}

// parseWavuID parses the wiki's numeric move id; nil when absent or not
// a plain integer.
func parseWavuID(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// extractImpact parses a startup field like "i12~14" into frames.
func extractImpact(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if s[0] == 'i' || s[0] == 'I' {
		s = s[1:]
	}
	m := digitsRegex.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &v
}

// cleanHitLevel strips markup from a hit level string while preserving
// the level notation itself (h, m, l, sm, !, ...). A leading comma left
// over from chain splitting is dropped.
func cleanHitLevel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, ","))
	if s == "" {
		return ""
	}
	s = wikitext.StripLinks(s)
	s = removeHTMLTags(s)
	s = removeTemplates(s)
	return strings.TrimSpace(s)
}

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

func removeHTMLTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// removeTemplates deletes {{...}} blocks wholesale using a brace-depth
// scan; unbalanced openers are left as-is.
func removeTemplates(s string) string {
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			return s
		}
		end, ok := wikitext.MatchBraces(s, start)
		if !ok {
			return s
		}
		s = s[:start] + s[end+2:]
	}
}

// deriveAdvantage resolves a raw on-hit or on-counter-hit value into its
// display string and extracted integer. Values containing bracketed
// cross-references go through broken-link recovery against the fallback
// table.
func (p *Parser) deriveAdvantage(raw string, fallbacks map[string]string) (string, *int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	resolved := p.recoverAdvantage(raw, fallbacks)
	return strings.TrimSpace(resolved), extractInt(resolved)
}

// recoverAdvantage handles the cross-reference patterns the wiki puts in
// advantage cells instead of numbers:
//
//   - "[[Bryan combos#Staples" (unterminated): looked up by fragment
//   - "[[Page|+35a]]": the display text
//   - "[[Page]] rest": the text after the link
//   - "[[Page#Fragment]]": looked up by fragment, neutral default if
//     unknown
func (p *Parser) recoverAdvantage(raw string, fallbacks map[string]string) string {
	if !strings.Contains(raw, "[[") {
		return raw
	}

	if !strings.Contains(raw, "]]") {
		content := strings.TrimSpace(raw[strings.Index(raw, "[[")+2:])
		return p.lookupFallback(content, fallbacks)
	}

	m := linkRegex.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	content := m[1]
	if pipe := strings.IndexByte(content, '|'); pipe >= 0 {
		return strings.TrimSpace(content[pipe+1:])
	}
	if after := raw[strings.Index(raw, "]]")+2:]; strings.TrimSpace(after) != "" {
		return strings.TrimSpace(after)
	}
	return p.lookupFallback(content, fallbacks)
}

func (p *Parser) lookupFallback(content string, fallbacks map[string]string) string {
	// Sorted fragments keep the lookup deterministic; at most one should
	// ever match a given cell.
	frags := make([]string, 0, len(fallbacks))
	for frag := range fallbacks {
		frags = append(frags, frag)
	}
	sort.Strings(frags)
	for _, frag := range frags {
		if strings.Contains(content, frag) {
			return fallbacks[frag]
		}
	}
	p.log.Debug("unknown cross-reference in advantage field, using default",
		"reference", content, "default", p.cfg.AdvantageFallback)
	return p.cfg.AdvantageFallback
}

// combineNotes cleans each link's notes and joins the unique results in
// sorted order. Sorting makes the output independent of traversal order,
// which keeps repeated runs byte-identical.
func (p *Parser) combineNotes(c *chain) string {
	unique := make(map[string]struct{})
	for _, link := range c.links {
		cleaned := p.cleanNotes(link.params["notes"])
		if cleaned != "" {
			unique[cleaned] = struct{}{}
		}
	}
	parts := make([]string, 0, len(unique))
	for s := range unique {
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// cleanNotes normalizes one notes value: unwrap a single Plainlist
// wrapper, substitute known sub-templates, strip markup, then reduce the
// line list to "; "-joined items with list markers removed.
func (p *Parser) cleanNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return ""
	}

	notes = unwrapPlainlist(notes)
	for name, replacement := range p.cfg.NoteReplacements {
		notes = replaceTemplates(notes, name, replacement)
	}
	notes = wikitext.Clean(notes)

	var lines []string
	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "; ")
}

// unwrapPlainlist removes a {{Plainlist|...}} wrapper when it spans the
// whole value.
func unwrapPlainlist(s string) string {
	if !strings.HasPrefix(s, "{{") {
		return s
	}
	inner := strings.TrimSpace(s[2:])
	if len(inner) < len("plainlist") || !strings.EqualFold(inner[:len("plainlist")], "plainlist") {
		return s
	}
	end, ok := wikitext.MatchBraces(s, 0)
	if !ok || end+2 != len(s) {
		return s
	}
	body := s[2:end]
	if pipe := strings.IndexByte(body, '|'); pipe >= 0 {
		return strings.TrimSpace(body[pipe+1:])
	}
	return s
}

// replaceTemplates substitutes every {{name}} or {{name|...}} block with
// the replacement text. The name match is case-insensitive.
func replaceTemplates(s, name, replacement string) string {
	lowerNeedle := "{{" + strings.ToLower(name)
	for i := 0; i < len(s); {
		lower := strings.ToLower(s)
		j := strings.Index(lower[i:], lowerNeedle)
		if j < 0 {
			return s
		}
		start := i + j
		k := start + len(lowerNeedle)
		for k < len(s) && (s[k] == ' ' || s[k] == '\t' || s[k] == '\n') {
			k++
		}
		if k >= len(s) || (s[k] != '|' && s[k] != '}') {
			i = start + 2
			continue
		}
		end, ok := wikitext.MatchBraces(s, start)
		if !ok {
			i = start + 2
			continue
		}
		s = s[:start] + replacement + s[end+2:]
		i = start + len(replacement)
	}
	return s
}

// deriveFlags sets the boolean properties from the final hit level and
// notes strings. Checks are independent; one note can set several flags.
func deriveFlags(m *tekken.Move) {
	levelTokens := strings.Split(strings.ToLower(m.HitLevel), ",")
	for _, tok := range levelTokens {
		switch strings.TrimSpace(tok) {
		case "t":
			m.IsTH = true
		case "ub":
			m.IsUB = true
		case "sm":
			m.IsSM = true
		}
	}
	if strings.Contains(m.HitLevel, "!") {
		m.IsUnparryable = true
	}

	notes := strings.ToLower(m.Notes)
	if strings.Contains(notes, "power crush") || strings.Contains(notes, "armor") {
		m.IsBA = true
	}
	if strings.Contains(notes, "heat engager") {
		m.IsHE = true
	}
	if strings.Contains(notes, "heat smash") {
		m.IsHS = true
	}
	if strings.Contains(notes, "heat burst") {
		m.IsHB = true
	}
	if strings.Contains(notes, "homing") {
		m.IsHoming = true
	}
	if strings.Contains(notes, "guard break") || strings.Contains(notes, "guard crush") {
		m.GuardBurst = true
	}
}
