package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/logging"
	"github.com/lixenwraith/haa-logo/page"
	"github.com/lixenwraith/haa-logo/watch"
)

var (
	configFlag = flag.String("config", "", "Config file (default: ./haa-logo.yaml, then embedded)")
	outFlag    = flag.String("out", "", "Output document path")
	assetsFlag = flag.String("assets", "", "Icon directory with one sub-directory per reel")
	noOpenFlag = flag.Bool("no-open", false, "Do not open the generated page")
	watchFlag  = flag.String("watch", "", "Cron spec for scheduled rebuilds, e.g. \"@every 30s\"")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/haa-logo.log")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	logFile, err := logging.Setup(logging.Options{
		Debug:    *debugFlag,
		FileName: "haa-logo.log",
		Level:    cfg.Runtime.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *dumpFlag {
		data, err := config.Marshal(cfg)
		if err != nil {
			log.WithError(err).Fatal("Failed to marshal config")
		}
		os.Stdout.Write(data)
		return
	}

	if err := run(cfg); err != nil {
		log.WithError(err).Error("Generation failed")
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *outFlag != "" {
		cfg.Runtime.Output = *outFlag
	}
	if *assetsFlag != "" {
		cfg.Runtime.AssetsDir = *assetsFlag
	}
	if *noOpenFlag {
		cfg.Runtime.Open = false
	}
	if *watchFlag != "" {
		cfg.Runtime.Watch = *watchFlag
	}
}

func run(cfg config.Config) error {
	if _, err := page.Build(cfg); err != nil {
		return err
	}

	if cfg.Runtime.Open {
		open(cfg.Runtime.Output)
	}

	if cfg.Runtime.Watch == "" {
		return nil
	}

	w, err := watch.ForConfig(cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx)
}

// open shows the document in the platform viewer; failure only warns
func open(path string) {
	if err := page.Open(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("Could not open viewer")
	}
}
