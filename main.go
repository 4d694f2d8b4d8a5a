package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/levels"
	"github.com/milk9111/asciiknight/prefabs"
)

func main() {
	styleName := flag.String("style", "", "combat style: 1/cooldown or 2/spam (skips the menu)")
	levelName := flag.String("level", levels.DefaultLevel, "arena layout: "+strings.Join(levels.Names(), ", "))
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	watch := flag.Bool("watch", false, "reload prefabs/tuning.yaml and wave scripts when they change")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		logger.Fatal().Err(err).Msg("load tuning")
	}
	a, err := arena.Load(*levelName)
	if err != nil {
		logger.Fatal().Err(err).Msg("load arena")
	}

	var style component.CombatStyle
	if *styleName != "" {
		style, err = component.ParseCombatStyle(*styleName)
		if err != nil {
			logger.Fatal().Err(err).Msg("parse -style")
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game := NewGame(Config{
		Arena:  a,
		Tuning: tuning,
		Style:  style,
		Seed:   *seed,
		Debug:  *debug,
	}, logger)

	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			logger.Warn().Err(err).Msg("hot reload disabled")
		} else {
			game.watcher = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(game.width), int(game.height))
	ebiten.SetWindowTitle("ascii knight")
	ebiten.SetTPS(1000 / tuning.FrameDelayMS)

	err = ebiten.RunGame(game)
	if game.watcher != nil {
		_ = game.watcher.Close()
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("run")
	}
}
