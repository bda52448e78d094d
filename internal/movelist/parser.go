// Package movelist parses Wavu Wiki movelist documents into flattened
// frame data records. It resolves {{Move}} template chains linked by
// {{MoveInherit}} and derives typed fields from the free-text parameters.
//
// The package performs no I/O and keeps no state between documents; a
// Parser is safe to reuse across documents and goroutines.
package movelist

import (
	"log/slog"

	"github.com/FottenSC/FrameData/internal/entities/tekken"
	"github.com/FottenSC/FrameData/internal/errors"
	"github.com/FottenSC/FrameData/internal/wikitext"
)

const (
	defaultMoveTemplate    = "Move"
	defaultInheritTemplate = "MoveInherit"
	defaultQueryTemplate   = "MoveQuery"

	// defaultAdvantageFallback is used when a broken cross-reference in an
	// advantage field matches no known fragment.
	defaultAdvantageFallback = "+0"
)

// DefaultNoteReplacements maps sub-template names appearing inside notes
// to their plain-text equivalents. Dotlist is a pure wrapper and maps to
// nothing.
func DefaultNoteReplacements() map[string]string {
	return map[string]string{
		"HeatEngager":   "Heat Engager",
		"HeatSmash":     "Heat Smash",
		"HeatBurst":     "Heat Burst",
		"HeatDash":      "Heat Dash",
		"BB":            "Balcony Break",
		"WB":            "Wall Break",
		"WS":            "While Standing",
		"FB":            "Floor Break",
		"ReversalBreak": "Reversal Break",
		"Spike":         "Spike",
		"Dotlist":       "",
	}
}

// DefaultHitFallbacks maps known broken cross-reference fragments in the
// on-hit advantage field to literal values. The wiki links these cells to
// combo pages instead of giving a number.
func DefaultHitFallbacks() map[string]string {
	return map[string]string{
		"Bryan combos#Staples":     "+35a (+25)",
		"Bryan combos#Wall":        "+35a (+25)",
		"Bryan combos#Mini-combos": "+14a",
	}
}

// DefaultCounterHitFallbacks is the counter-hit counterpart of
// DefaultHitFallbacks.
func DefaultCounterHitFallbacks() map[string]string {
	return map[string]string{
		"Bryan combos#Staples":     "+65a",
		"Bryan combos#Mini-combos": "+14a",
	}
}

// Config contains configuration options for the movelist parser. Lookup
// tables live here rather than as package constants so they can differ
// per source site and be exercised directly in tests.
type Config struct {
	// Template names of interest. Defaults: Move, MoveInherit, MoveQuery.
	MoveTemplate    string
	InheritTemplate string
	QueryTemplate   string

	// NoteReplacements maps note sub-template names to replacement text.
	NoteReplacements map[string]string

	// HitFallbacks and CounterHitFallbacks recover advantage values from
	// broken cross-references; AdvantageFallback is the neutral default
	// when no fragment matches.
	HitFallbacks        map[string]string
	CounterHitFallbacks map[string]string
	AdvantageFallback   string

	// Logger for data-quality warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.MoveTemplate == "" {
		cfg.MoveTemplate = defaultMoveTemplate
	}
	if cfg.InheritTemplate == "" {
		cfg.InheritTemplate = defaultInheritTemplate
	}
	if cfg.QueryTemplate == "" {
		cfg.QueryTemplate = defaultQueryTemplate
	}
	if cfg.NoteReplacements == nil {
		cfg.NoteReplacements = DefaultNoteReplacements()
	}
	if cfg.HitFallbacks == nil {
		cfg.HitFallbacks = DefaultHitFallbacks()
	}
	if cfg.CounterHitFallbacks == nil {
		cfg.CounterHitFallbacks = DefaultCounterHitFallbacks()
	}
	if cfg.AdvantageFallback == "" {
		cfg.AdvantageFallback = defaultAdvantageFallback
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// Parser turns movelist wikitext into tekken.Move records.
type Parser struct {
	cfg *Config
	log *slog.Logger
}

// New creates a Parser with the provided configuration.
func New(cfg *Config) (*Parser, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Parser{cfg: cfg, log: cfg.Logger}, nil
}

// Parse resolves every move chain in the document and returns the
// flattened records in document order of their chain roots. Malformed
// fragments are logged and skipped; Parse never fails a document.
func (p *Parser) Parse(text string) []*tekken.Move {
	chains := p.resolveChains(text)
	moves := make([]*tekken.Move, 0, len(chains))
	for _, c := range chains {
		moves = append(moves, p.assemble(c))
	}
	return moves
}

// assemble maps a resolved chain onto the output schema: identity from
// the root link, frame data from the terminal link (falling back through
// the chain for fields the terminal leaves unspecified), notes from
// every link.
func (p *Parser) assemble(c *chain) *tekken.Move {
	root := c.root().params
	term := c.effective()

	m := &tekken.Move{
		WavuID:    parseWavuID(root["num"]),
		Command:   wikitext.Clean(c.command()),
		MoveName:  wikitext.Clean(root["name"]),
		HitLevel:  cleanHitLevel(term["target"]),
		ImpactRaw: term["startup"],
		Impact:    extractImpact(term["startup"]),
		Damage:    wikitext.Clean(term["damage"]),
		DamageDec: sumDamage(term["damage"]),
		Block:     wikitext.Clean(term["block"]),
		BlockDec:  extractInt(term["block"]),
	}

	m.Hit, m.HitDec = p.deriveAdvantage(term["hit"], p.cfg.HitFallbacks)
	m.CounterHit, m.CounterHitDec = p.deriveAdvantage(term["ch"], p.cfg.CounterHitFallbacks)
	m.Notes = p.combineNotes(c)

	deriveFlags(m)
	return m
}
