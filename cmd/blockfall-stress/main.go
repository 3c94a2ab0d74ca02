package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", runtime.NumCPU(), "The number of games to run concurrently.")
	configPath := flag.String("config", os.Getenv("BLOCKFALL_CONFIG"), "Optional YAML config file.")
	frameTime := flag.Duration("frame", 16*time.Millisecond, "Simulated time per frame.")
	pressRate := flag.Float64("press-rate", 0.3, "Chance of a bot pressing a command each frame.")
	seed := flag.Uint64("seed", 1, "Base seed for pieces and bot input.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = *loaded
	}

	log.Info().Int("games", *games).Dur("duration", *duration).Msg("starting stress test")

	bots := make([]*bot, *games)
	for i := range bots {
		gameCfg := cfg
		gameCfg.Seed = *seed + uint64(i)
		engine, err := game.New(gameCfg, game.WithLogger(log.Logger.With().Int("game", i).Logger()))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create engine")
		}
		bots[i] = newBot(engine, gameCfg.Seed, *pressRate, *frameTime)
	}

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Width:          cfg.Width,
		Height:         cfg.Height,
		FrameTime:      *frameTime,
		PressRate:      *pressRate,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	group, ctx := errgroup.WithContext(ctx)
	for _, b := range bots {
		group.Go(func() error {
			for ctx.Err() == nil {
				b.step()
			}
			return nil
		})
	}
	_ = group.Wait()

	report.TotalTime = time.Since(startTime)
	for _, b := range bots {
		report.Add(b.result())
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int64("updates", report.TotalUpdates).Msg("simulation finished")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
