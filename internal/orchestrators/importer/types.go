package importer

// ImportCharacterInput defines the input for importing one character
type ImportCharacterInput struct {
	// Character as used in movelist page titles, e.g. "Devil_Jin"
	Character string
	// RunID tags the stored batch; generated when empty
	RunID string
}

// ImportCharacterOutput defines the output for importing one character
type ImportCharacterOutput struct {
	Character string
	Page      string
	RunID     string
	MoveCount int
}

// ImportAllInput defines the input for importing the configured roster
type ImportAllInput struct {
	// Characters overrides the configured roster when non-empty
	Characters []string
}

// CharacterResult is the per-character outcome of an ImportAll run
type CharacterResult struct {
	Character string
	MoveCount int
	Err       error
}

// ImportAllOutput defines the output for importing the configured roster
type ImportAllOutput struct {
	RunID     string
	Results   []CharacterResult
	Succeeded int
	Failed    int
}
