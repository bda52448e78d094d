// Package importer implements the import workflow: fetch a character's
// movelist, parse it into flattened move records, and replace the stored
// batch.
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/FottenSC/FrameData/internal/orchestrators/importer Service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/FottenSC/FrameData/internal/clients/wavu"
	"github.com/FottenSC/FrameData/internal/errors"
	"github.com/FottenSC/FrameData/internal/movelist"
	"github.com/FottenSC/FrameData/internal/pkg/idgen"
	"github.com/FottenSC/FrameData/internal/repositories/moves"
)

// defaultFetchInterval matches the wiki's informal politeness guideline.
const defaultFetchInterval = 1500 * time.Millisecond

// Service defines the interface for import operations
type Service interface {
	// ImportCharacter fetches, parses, and stores one character's movelist
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)

	// ImportAll imports every configured character, rate limited;
	// per-character failures are collected, not fatal to the run
	ImportAll(ctx context.Context, input *ImportAllInput) (*ImportAllOutput, error)
}

// Config holds the dependencies for the importer orchestrator
type Config struct {
	Client      wavu.Client
	MoveRepo    moves.Repository
	Parser      *movelist.Parser
	Characters  []string
	Limiter     *rate.Limiter
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.MoveRepo == nil {
		vb.RequiredField("MoveRepo")
	}
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}

	return vb.Build()
}

type orchestrator struct {
	client     wavu.Client
	moveRepo   moves.Repository
	parser     *movelist.Parser
	characters []string
	limiter    *rate.Limiter
	idGen      idgen.Generator
	log        *slog.Logger
}

// NewOrchestrator creates a new importer orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(defaultFetchInterval), 1)
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("run")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		client:     cfg.Client,
		moveRepo:   cfg.MoveRepo,
		parser:     cfg.Parser,
		characters: cfg.Characters,
		limiter:    limiter,
		idGen:      idGen,
		log:        logger,
	}, nil
}

func (o *orchestrator) ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Character == "" {
		return nil, errors.InvalidArgument("character cannot be empty")
	}

	runID := input.RunID
	if runID == "" {
		runID = o.idGen.Generate()
	}

	fetched, err := o.client.GetMovelist(ctx, &wavu.GetMovelistInput{
		Character: input.Character,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch movelist for %s", input.Character)
	}

	parsed := o.parser.Parse(fetched.Wikitext)
	o.log.Info("parsed movelist",
		"character", input.Character, "page", fetched.Page, "moves", len(parsed))

	if _, err := o.moveRepo.ReplaceBatch(ctx, moves.ReplaceBatchInput{
		Character: input.Character,
		RunID:     runID,
		Moves:     parsed,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to store batch for %s", input.Character)
	}

	return &ImportCharacterOutput{
		Character: input.Character,
		Page:      fetched.Page,
		RunID:     runID,
		MoveCount: len(parsed),
	}, nil
}

func (o *orchestrator) ImportAll(ctx context.Context, input *ImportAllInput) (*ImportAllOutput, error) {
	if input == nil {
		input = &ImportAllInput{}
	}

	characters := input.Characters
	if len(characters) == 0 {
		characters = o.characters
	}
	if len(characters) == 0 {
		return nil, errors.InvalidArgument("no characters configured")
	}

	runID := o.idGen.Generate()
	out := &ImportAllOutput{RunID: runID}

	for _, character := range characters {
		if err := o.limiter.Wait(ctx); err != nil {
			// Context gone; report what finished so far.
			return out, errors.WrapWithCode(err, errors.CodeDeadlineExceeded,
				"import run interrupted")
		}

		result := CharacterResult{Character: character}
		charOut, err := o.ImportCharacter(ctx, &ImportCharacterInput{
			Character: character,
			RunID:     runID,
		})
		if err != nil {
			o.log.Error("character import failed", "character", character, "error", err)
			result.Err = err
			out.Failed++
		} else {
			result.MoveCount = charOut.MoveCount
			out.Succeeded++
		}
		out.Results = append(out.Results, result)
	}

	return out, nil
}
