package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("BLOCKFALL_CONFIG"), "Optional YAML config file.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	volume := flag.Float64("volume", 0.5, "Sound volume between 0 and 1.")
	mute := flag.Bool("mute", false, "Disable sound.")
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
	keymap, err := cfg.Keymap()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid key bindings")
	}
	bindings, err := resolveBindings(keymap)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid key bindings")
	}

	player := audio.NewPlayer(*volume, log.Logger)
	if !*mute {
		if err := player.Start(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable")
		}
		defer player.Close()
	}

	engine, err := game.New(cfg,
		game.WithLogger(log.Logger),
		game.WithSink(player),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	g := &Game{engine: engine, bindings: bindings}
	if *debug {
		g.imguiBackend = debugui_ebiten.NewImguiBackend("Blockfall (debug)", 1280, 800)
		g.imguiInput = debugui.Attach(engine)
	} else {
		w, h := g.Layout(0, 0)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Blockfall")
	}

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("fallInterval", cfg.FallInterval).
		Bool("debug", *debug).
		Msg("blockfall started")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
