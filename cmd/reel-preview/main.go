package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/audio"
	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/icon"
	"github.com/lixenwraith/haa-logo/logging"
	"github.com/lixenwraith/haa-logo/preview"
)

var (
	configFlag  = flag.String("config", "", "Config file (default: ./haa-logo.yaml, then embedded)")
	assetsFlag  = flag.String("assets", "", "Icon directory with one sub-directory per reel")
	seedFlag    = flag.Int64("seed", 0, "Winner seed (default: current time)")
	noSoundFlag = flag.Bool("no-sound", false, "Run silent")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/reel-preview.log")
	planFlag    = flag.Int("plan", 0, "Print the event timeline of N cycles for the seed and exit")
)

func main() {
	flag.Parse()

	logFile, err := logging.Setup(logging.Options{
		Debug:    *debugFlag,
		FileName: "reel-preview.log",
		Quiet:    true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *assetsFlag != "" {
		cfg.Runtime.AssetsDir = *assetsFlag
	}

	strips, err := icon.LoadReels(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load icons: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(time.Now)

	if *planFlag > 0 {
		if err := preview.WritePlan(os.Stdout, cfg, strips, seed, *planFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to plan: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var player *audio.Player
	if !*noSoundFlag {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.WithError(err).Warn("Audio initialization failed, continuing without sound")
			player = nil
		} else {
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mREEL PREVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("seed", seed).Info("Preview started")
	err = preview.Run(ctx, screen, cfg, strips, preview.Options{Seed: seed, Sound: player})
	screen.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
		os.Exit(1)
	}
}

// resolveSeed honors an explicit -seed, zero included, and falls back to the clock
func resolveSeed(now func() time.Time) int64 {
	if flagSet("seed") {
		return *seedFlag
	}
	return now().UnixNano()
}

// flagSet reports whether name was given on the command line
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
