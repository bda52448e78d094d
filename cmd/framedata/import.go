package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/FottenSC/FrameData/internal/clients/wavu"
	"github.com/FottenSC/FrameData/internal/config"
	"github.com/FottenSC/FrameData/internal/movelist"
	"github.com/FottenSC/FrameData/internal/orchestrators/importer"
	redisclient "github.com/FottenSC/FrameData/internal/redis"
	"github.com/FottenSC/FrameData/internal/repositories/moves"
)

var (
	configPath    string
	redisAddr     string
	onlyCharacter string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import frame data from Wavu Wiki",
	Long:  `Fetch movelist pages, resolve move chains, and replace the stored batch for each character.`,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config (optional)")
	importCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "redis endpoint")
	importCmd.Flags().StringVar(&onlyCharacter, "character", "", "import a single character instead of the full roster")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping after current character")
		cancel()
	}()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	svc, err := buildImporter(cfg)
	if err != nil {
		return err
	}

	if onlyCharacter != "" {
		out, err := svc.ImportCharacter(ctx, &importer.ImportCharacterInput{
			Character: onlyCharacter,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d moves (run %s)\n", out.Character, out.MoveCount, out.RunID)
		return nil
	}

	out, err := svc.ImportAll(ctx, &importer.ImportAllInput{})
	if err != nil {
		return err
	}
	for _, result := range out.Results {
		if result.Err != nil {
			fmt.Printf("%s: FAILED: %v\n", result.Character, result.Err)
			continue
		}
		fmt.Printf("%s: %d moves\n", result.Character, result.MoveCount)
	}
	fmt.Printf("run %s: %d succeeded, %d failed\n", out.RunID, out.Succeeded, out.Failed)

	if out.Succeeded == 0 && out.Failed > 0 {
		return fmt.Errorf("all %d characters failed", out.Failed)
	}
	return nil
}

func buildImporter(cfg *config.Config) (importer.Service, error) {
	client, err := wavu.New(&wavu.Config{
		BaseURL:   cfg.APIBaseURL,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	parser, err := movelist.New(cfg.ParserConfig())
	if err != nil {
		return nil, err
	}

	rdb, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}

	repo, err := moves.NewRedis(&moves.RedisConfig{Client: rdb})
	if err != nil {
		return nil, err
	}

	return importer.NewOrchestrator(&importer.Config{
		Client:     client,
		MoveRepo:   repo,
		Parser:     parser,
		Characters: cfg.Characters,
		Limiter:    rate.NewLimiter(rate.Every(cfg.FetchEvery), 1),
	})
}
