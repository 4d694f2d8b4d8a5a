// Command knight-term plays the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/levels"
	"github.com/milk9111/asciiknight/prefabs"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stderr))
}

// runMain returns the exit code so deferred cleanup, including the log
// file, runs before the process exits.
func runMain(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("knight-term", flag.ContinueOnError)
	flags.SetOutput(stderr)
	styleName := flags.String("style", "", "combat style: 1/cooldown or 2/spam (skips the menu)")
	levelName := flags.String("level", levels.DefaultLevel, "arena layout: "+strings.Join(levels.Names(), ", "))
	seed := flags.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flags.Bool("debug", false, "enable debug logging")
	watch := flags.Bool("watch", false, "reload prefabs/tuning.yaml and wave scripts when they change")
	logPath := flags.String("log", "", "write logs to this file (the screen owns stdout)")
	mute := flags.Bool("mute", false, "disable sound")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "open log: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	if err := run(options{
		style:  *styleName,
		level:  *levelName,
		seed:   *seed,
		watch:  *watch,
		mute:   *mute,
		logger: logger,
	}); err != nil {
		logger.Error().Err(err).Msg("exit")
		fmt.Fprintf(stderr, "knight-term: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	style  string
	level  string
	seed   int64
	watch  bool
	mute   bool
	logger zerolog.Logger
}

func run(opts options) error {
	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		return err
	}
	a, err := arena.Load(opts.level)
	if err != nil {
		return err
	}

	var style component.CombatStyle
	if opts.style != "" {
		if style, err = component.ParseCombatStyle(opts.style); err != nil {
			return err
		}
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	t, err := NewTerm(opts.logger, !opts.mute)
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer t.Close()

	if opts.watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			opts.logger.Warn().Err(err).Msg("hot reload disabled")
		} else {
			defer w.Close()
			t.watcher = w
		}
	}

	if style == 0 {
		var ok bool
		if style, ok = t.ChooseStyle(); !ok {
			return nil
		}
	}
	return t.Play(a, tuning, style, opts.seed)
}
