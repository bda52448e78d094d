package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	redisclient "github.com/FottenSC/FrameData/internal/redis"
	"github.com/FottenSC/FrameData/internal/repositories/moves"
)

var charactersRedisAddr string

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List characters with stored frame data",
	RunE:  runCharacters,
}

func init() {
	charactersCmd.Flags().StringVar(&charactersRedisAddr, "redis", "localhost:6379", "redis endpoint")
}

func runCharacters(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	repo, err := openRepository(charactersRedisAddr)
	if err != nil {
		return err
	}

	listed, err := repo.ListCharacters(ctx, moves.ListCharactersInput{})
	if err != nil {
		return err
	}

	for _, character := range listed.Characters {
		got, err := repo.GetBatch(ctx, moves.GetBatchInput{Character: character})
		if err != nil {
			fmt.Printf("%s: %v\n", character, err)
			continue
		}
		imported := time.Unix(got.Batch.ImportedAt, 0).Format(time.RFC3339)
		fmt.Printf("%s: %d moves, imported %s (run %s)\n",
			character, len(got.Batch.Moves), imported, got.Batch.RunID)
	}
	return nil
}

func openRepository(addr string) (moves.Repository, error) {
	rdb, err := redisclient.NewClient(addr, nil)
	if err != nil {
		return nil, err
	}
	return moves.NewRedis(&moves.RedisConfig{Client: rdb})
}
