package moves

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/FottenSC/FrameData/internal/entities/tekken"
	"github.com/FottenSC/FrameData/internal/errors"
	"github.com/FottenSC/FrameData/internal/pkg/clock"
	redisclient "github.com/FottenSC/FrameData/internal/redis"
)

const (
	batchKeyPrefix   = "moves:"
	charactersSetKey = "moves:characters"

	errCharacterEmpty = "character cannot be empty"
)

// RedisConfig holds the dependencies for the redis-backed repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new redis-backed moves repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func batchKey(character string) string {
	return batchKeyPrefix + character
}

func (r *redisRepository) ReplaceBatch(ctx context.Context, input ReplaceBatchInput) (*ReplaceBatchOutput, error) {
	if input.Character == "" {
		return nil, errors.InvalidArgument(errCharacterEmpty)
	}

	batch := &Batch{
		Character:  input.Character,
		RunID:      input.RunID,
		ImportedAt: r.clock.Now().Unix(),
		Moves:      input.Moves,
	}
	if batch.Moves == nil {
		batch.Moves = []*tekken.Move{}
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal batch for %s", input.Character)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, batchKey(input.Character), data, 0)
	pipe.SAdd(ctx, charactersSetKey, input.Character)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to replace batch for %s", input.Character)
	}

	return &ReplaceBatchOutput{Batch: batch}, nil
}

func (r *redisRepository) GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error) {
	if input.Character == "" {
		return nil, errors.InvalidArgument(errCharacterEmpty)
	}

	result, err := r.client.Get(ctx, batchKey(input.Character)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no batch stored for %s", input.Character)
		}
		return nil, errors.Wrapf(err, "failed to get batch for %s", input.Character)
	}

	var batch Batch
	if err := json.Unmarshal([]byte(result), &batch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal batch for %s", input.Character)
	}

	return &GetBatchOutput{Batch: &batch}, nil
}

func (r *redisRepository) ListCharacters(ctx context.Context, _ ListCharactersInput) (*ListCharactersOutput, error) {
	characters, err := r.client.SMembers(ctx, charactersSetKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	sort.Strings(characters)
	return &ListCharactersOutput{Characters: characters}, nil
}

func (r *redisRepository) DeleteBatch(ctx context.Context, input DeleteBatchInput) (*DeleteBatchOutput, error) {
	if input.Character == "" {
		return nil, errors.InvalidArgument(errCharacterEmpty)
	}

	exists, err := r.client.Exists(ctx, batchKey(input.Character)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check batch for %s", input.Character)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("no batch stored for %s", input.Character)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, batchKey(input.Character))
	pipe.SRem(ctx, charactersSetKey, input.Character)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete batch for %s", input.Character)
	}

	return &DeleteBatchOutput{}, nil
}
