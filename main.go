package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "go-life",
		Short:        "Conway's Game of Life on a sparse, unbounded board",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newPatternsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		configPath  string
		pattern     string
		generations int
		frameRate   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the game loop until it ends or is interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("pattern") {
				config.Pattern = pattern
			}
			if flags.Changed("generations") {
				config.MaxGenerations = generations
			}
			if flags.Changed("frame-rate") {
				config.FrameRate = frameRate
			}
			if err = config.Validate(); err != nil {
				return err
			}

			log, err := newLogger(cmd.ErrOrStderr(), config.LogLevel)
			if err != nil {
				return err
			}
			return run(cmd.Context(), config, log)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigFile, "JSON or YAML config file")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "starting pattern, random or one listed by the patterns command")
	cmd.Flags().IntVarP(&generations, "generations", "g", 0, "stop after this many generations (0 runs forever)")
	cmd.Flags().DurationVar(&frameRate, "frame-rate", 0, "delay between generations")
	return cmd
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the named starting patterns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, model.PatternRandom)
			for _, name := range model.PatternNames() {
				fmt.Fprintln(out, name)
			}
		},
	}
}

// loadConfig falls back to the defaults when the default file is absent;
// an explicitly requested file must exist
func loadConfig(path string, explicit bool) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		logrus.Infof("Using default configuration (%s not found)", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "[newLogger] bad log level: %+v", level)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

// run drives the game until it finishes or SIGINT/SIGTERM arrives
func run(ctx context.Context, config utils.Config, log logrus.FieldLogger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		done      = make(chan struct{})
	)

	eg.Go(func() error {
		defer close(done)
		stats, err := runGame(egCtx, config, log)
		if err != nil {
			return err
		}
		logFinalStats(log, stats)
		return nil
	})

	eg.Go(func() error {
		select {
		case <-egCtx.Done():
			if ctx.Err() != nil {
				log.Info("Shutting down gracefully...")
			}
		case <-done:
		}
		return nil
	})

	return eg.Wait()
}

// runGame is the main game loop: one Tick per frame
func runGame(ctx context.Context, config utils.Config, log logrus.FieldLogger) (*utils.Stats, error) {
	rng := newRand(config.RandomSeed)

	board, pool, stats, err := initializeGame(config, rng)
	if err != nil {
		return nil, err
	}
	defer func() { model.BoardToPool(board, pool) }()
	logGameInfo(log, config, board)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		if ctx.Err() != nil {
			return stats, nil
		}

		frameStart := time.Now()
		livingCells, status, isStagnant := updateGameState(board, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		logGameStatus(log, generation, livingCells, status, stats, lastRestartGen)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			log.WithField("max_generations", config.MaxGenerations).Info("Reached maximum generations limit")
			return stats, nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		switch {
		case shouldRestart && config.AutoRestart:
			log.WithField("reason", restartReason).Info("Restarting")
			if board, err = restartGame(log, board, config, rng, pool); err != nil {
				return stats, err
			}
			lastRestartGen = generation
			stagnantCount = 0
		case livingCells == 0:
			log.WithField("generation", generation).Info("Board is extinct")
			return stats, nil
		case stagnantCount >= 2 && stagnantCount < config.StagnationThreshold:
			// Inject some life to try to break the stagnation
			board.InjectRandomLife(rng, seedArea(config), config.InjectionCount)
		}

		board.Tick()
		generation++

		if config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return stats, nil
			case <-time.After(config.FrameRate):
			}
		}
	}
}
