package main

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	statusActive   = "Active"
	statusStagnant = "Stagnant"
	statusExtinct  = "Extinct"

	// refreshEvery restarts a long-running random board to keep it interesting
	refreshEvery = 200
)

// newRand returns the game's random source; seed 0 means seed from the clock
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// seedArea is the window random life and injections are placed in
func seedArea(config utils.Config) model.Rect {
	return model.Rect{MinX: 0, MinY: 0, MaxX: config.SeedWidth - 1, MaxY: config.SeedHeight - 1}
}

// seedBoard clears board and fills it from the configured pattern
func seedBoard(board *model.Board, config utils.Config, rng *rand.Rand) error {
	if strings.EqualFold(config.Pattern, model.PatternRandom) {
		board.ResetWithInterestingPatterns(rng, seedArea(config), config.RandomDensity)
		return nil
	}

	board.Clear()
	if err := board.AddPattern(config.Pattern, 0, 0); err != nil {
		return errors.Wrap(err, "[seedBoard] failed to seed board")
	}
	return nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	*model.Board,
	*model.BoardPool,
	*utils.Stats,
	error,
) {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	board := newBoard(pool)
	if err := seedBoard(board, config, rng); err != nil {
		return nil, nil, nil, err
	}

	return board, pool, utils.NewStats(), nil
}

func newBoard(pool *model.BoardPool) *model.Board {
	if pool != nil {
		return pool.Get()
	}
	return model.NewBoard()
}

// logGameInfo shows the initial game information
func logGameInfo(log logrus.FieldLogger, config utils.Config, board *model.Board) {
	log.WithFields(logrus.Fields{
		"pattern":      config.Pattern,
		"memory_pool":  config.UseMemoryPool,
		"auto_restart": config.AutoRestart,
		"live_cells":   board.Len(),
	}).Info("Starting game")
}

// updateGameState updates stats and history and returns status information
func updateGameState(
	board *model.Board,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := board.Len()

	stats.Update(generation, livingCells, time.Since(lastFrameTime))
	stats.BoundingBoxSize = board.GetBoundingBoxSize()

	// Compare against history before recording this generation
	isStagnant := board.IsStagnant()
	board.UpdateHistory()

	status := statusActive
	if isStagnant {
		status = statusStagnant
	}
	if livingCells == 0 {
		status = statusExtinct
	}

	return livingCells, status, isStagnant
}

// logGameStatus logs the current game status
func logGameStatus(
	log logrus.FieldLogger,
	generation, livingCells int,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	log.WithFields(logrus.Fields{
		"generation":     generation,
		"living":         livingCells,
		"status":         status,
		"bounding_box":   stats.BoundingBoxSize,
		"gen_per_sec":    stats.GenerationsPerSecond,
		"avg_population": stats.AveragePopulation,
		"since_restart":  generation - lastRestartGen,
	}).Info("Generation")
}

// logFinalStats summarises a finished run
func logFinalStats(log logrus.FieldLogger, stats *utils.Stats) {
	log.WithFields(logrus.Fields{
		"generations":     stats.TotalGenerations,
		"runtime":         stats.Runtime().Round(time.Millisecond).String(),
		"gen_per_sec":     stats.GenerationsPerSecond,
		"avg_population":  stats.AveragePopulation,
		"peak_population": stats.PeakPopulation,
	}).Info("Final stats")
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%refreshEvery == 0 && strings.EqualFold(config.Pattern, model.PatternRandom) {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame hands the old board back and seeds a fresh one
func restartGame(
	log logrus.FieldLogger,
	old *model.Board,
	config utils.Config,
	rng *rand.Rand,
	pool *model.BoardPool,
) (*model.Board, error) {
	model.BoardToPool(old, pool)

	board := newBoard(pool)
	if err := seedBoard(board, config, rng); err != nil {
		return nil, err
	}

	log.WithField("live_cells", board.Len()).Info("New patterns loaded")
	return board, nil
}
