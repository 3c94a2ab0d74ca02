package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const frameInterval = 16 * time.Millisecond

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("BLOCKFALL_CONFIG"), "Optional YAML config file.")
	logPath := flag.String("log", getEnv("BLOCKFALL_LOG", ""), "Write logs to this file. The terminal is busy drawing.")
	volume := flag.Float64("volume", 0.5, "Sound volume between 0 and 1.")
	mute := flag.Bool("mute", false, "Start with sound off.")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", *logPath).Msg("failed to open log file")
		}
		defer f.Close()
		logOut = f
	}
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
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
	keymap, err := cfg.Keymap()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid key bindings")
	}

	player := audio.NewPlayer(*volume, log.Logger)
	if err := player.Start(); err != nil {
		// the game runs without sound
		log.Warn().Err(err).Msg("audio unavailable")
	}
	defer player.Close()
	player.SetMuted(*mute)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to init screen")
	}
	defer screen.Fini()

	v := newView(cfg.Size())
	engine, err := game.New(cfg,
		game.WithLogger(log.Logger),
		game.WithSink(game.MultiSink{v, player}),
	)
	if err != nil {
		screen.Fini()
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx, frameInterval)

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("fallInterval", cfg.FallInterval).
		Msg("blockfall started")

	run(ctx, screen, v, func(key tcell.Key, r rune) bool {
		if isQuit(key, r) {
			return false
		}
		if key == tcell.KeyRune && r == 'm' {
			player.SetMuted(!player.Muted())
			return true
		}
		if cmd, ok := keymap[keyName(key, r)]; ok {
			engine.Press(cmd)
		}
		return true
	})

	log.Info().Int("score", v.Score()).Msg("blockfall stopped")
}

// run draws v every frame and passes key presses to onKey until it returns false.
func run(ctx context.Context, screen tcell.Screen, v *view, onKey func(tcell.Key, rune) bool) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !onKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			v.draw(screen)
			screen.Show()
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
