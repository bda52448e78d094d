// Package tekken implements the Tekken 8 frame data entities
package tekken

// Move is a flattened frame data record for a single move string.
// NOTE: This is a data-only struct. All parsing and field derivation is
// done by internal/movelist; nothing here re-derives values.
type Move struct {
	// WavuID is the wiki's numeric move ID (the `num` template parameter).
	// Nil when the source omits it or it fails to parse.
	WavuID *int `json:"wavuId"`

	// Command is the full input string with every chain link concatenated,
	// e.g. "b+1,2,1+2".
	Command  string `json:"command"`
	MoveName string `json:"moveName"`

	// HitLevel is the comma-separated level string of the final hit,
	// e.g. "h,m" or "t". Markup is stripped, level notation preserved.
	HitLevel string `json:"hitLevel"`

	// Impact is the startup in frames of the resolved chain.
	// ImpactRaw preserves the source text (e.g. "i12~14").
	Impact    *int   `json:"impact"`
	ImpactRaw string `json:"impactRaw"`

	// Display string / extracted value pairs. The display string keeps the
	// source formatting; the Dec field is the best-effort integer.
	Damage        string `json:"damage"`
	DamageDec     int    `json:"damageDec"`
	Block         string `json:"block"`
	BlockDec      *int   `json:"blockDec"`
	Hit           string `json:"hit"`
	HitDec        *int   `json:"hitDec"`
	CounterHit    string `json:"counterHit"`
	CounterHitDec *int   `json:"counterHitDec"`

	// Notes is the deduplicated, sorted union of every chain link's notes,
	// joined with "; ".
	Notes string `json:"notes"`

	// Property flags derived from HitLevel and Notes. GI/LH/SS/RE exist in
	// the shared schema for other games and stay false for this source.
	IsGI          bool `json:"isGI"`
	IsUB          bool `json:"isUB"`
	IsLH          bool `json:"isLH"`
	IsSS          bool `json:"isSS"`
	IsBA          bool `json:"isBA"`
	IsTH          bool `json:"isTH"`
	IsRE          bool `json:"isRE"`
	IsHE          bool `json:"isHE"`
	IsHS          bool `json:"isHS"`
	IsHB          bool `json:"isHB"`
	IsSM          bool `json:"isSM"`
	IsUnparryable bool `json:"isUnparryable"`
	IsHoming      bool `json:"isHoming"`
	GuardBurst    bool `json:"guardBurst"`
}
