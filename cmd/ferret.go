package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/ferret-sh/ferret/internal/comm"
	"github.com/ferret-sh/ferret/internal/common"
	"github.com/ferret-sh/ferret/internal/common/history"
	"github.com/ferret-sh/ferret/internal/filter"
	"github.com/ferret-sh/ferret/internal/source"
	"github.com/ferret-sh/ferret/internal/util"
)

func main() {
	var config string
	var socketrequest string
	var pattern string
	var root string
	var debug bool

	cmd := &cli.Command{
		Name:                   "Ferret",
		Usage:                  "Fuzzy matching service and filter",
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "rank candidates from stdin (or a walked root) against a pattern",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:        "pattern",
						Destination: &pattern,
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "root",
						Aliases:     []string{"r"},
						Usage:       "walk this directory for candidates instead of reading stdin",
						Destination: &root,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runFilter(pattern, root)
				},
			},
			{
				Name:    "send",
				Aliases: []string{"s"},
				Usage:   "sends a request to the ferret service",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:        "request",
						Destination: &socketrequest,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					comm.Send(socketrequest)
					return nil
				},
			},
			{
				Name:    "generatedoc",
				Aliases: []string{"d"},
				Usage:   "generates a markdown documentation",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					util.GenerateDoc(common.DefaultConfig())
					return nil
				},
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "",
				Destination: &config,
				Usage:       "config folder location",
				Action: func(ctx context.Context, cmd *cli.Command, val string) error {
					common.SetExplicitDir(val)
					return nil
				},
			},
			&cli.BoolFlag{
				Name:        "debug",
				Aliases:     []string{"d"},
				Usage:       "enable debug logging",
				Destination: &debug,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			start := time.Now()

			if debug {
				logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				slog.SetDefault(logger)
			}

			loadLocalEnv()

			cfg := common.LoadServiceConfig()

			walker := source.NewWalker(cfg.Roots, cfg.IncludeDirs)
			if err := walker.Walk(); err != nil {
				slog.Error("ferret", "walk", err)
				os.Exit(1)
			}

			go func() {
				if err := walker.Watch(ctx); err != nil && ctx.Err() == nil {
					slog.Error("ferret", "watch", err)
				}
			}()

			opts := filter.Options{
				MinScore: cfg.MinScore,
				Weights:  cfg.Weights(),
			}

			service := comm.NewService(walker.Paths, opts, history.Load("ferret"))

			slog.Info("ferret", "startup", time.Since(start))

			service.StartListen()

			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runFilter(pattern, root string) error {
	cfg := common.LoadServiceConfig()

	var candidates []string

	if root != "" {
		walker := source.NewWalker([]string{root}, cfg.IncludeDirs)
		if err := walker.Walk(); err != nil {
			return err
		}

		candidates = walker.Paths()
	} else {
		var err error

		candidates, err = source.Lines(os.Stdin)
		if err != nil {
			return err
		}
	}

	opts := filter.Options{
		MinScore: cfg.MinScore,
		Weights:  cfg.Weights(),
	}

	for _, m := range filter.RankStrings(pattern, candidates, opts) {
		fmt.Printf("%d\t%s\n", m.Score, m.Text)
	}

	return nil
}

func loadLocalEnv() {
	envFile := filepath.Join(common.ConfigDir(), ".env")

	if common.FileExists(envFile) {
		err := godotenv.Load(envFile)
		if err != nil {
			slog.Error("ferret", "localenv", err)
			return
		}

		slog.Info("ferret", "localenv", "loaded")
	}
}
