package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FottenSC/FrameData/internal/repositories/moves"
)

var dumpRedisAddr string

var dumpCmd = &cobra.Command{
	Use:   "dump <character>",
	Short: "Print a character's stored batch as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpRedisAddr, "redis", "localhost:6379", "redis endpoint")
}

func runDump(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(dumpRedisAddr)
	if err != nil {
		return err
	}

	got, err := repo.GetBatch(context.Background(), moves.GetBatchInput{Character: args[0]})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(got.Batch, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
