package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/haa-logo/config"
	"github.com/lixenwraith/haa-logo/logging"
	"github.com/lixenwraith/haa-logo/page"
)

var (
	configFlag = flag.String("config", "", "Config file (default: ./haa-logo.yaml, then embedded)")
	pageFlag   = flag.String("page", "alien", "Page to generate: alien, human, motion")
	outFlag    = flag.String("out", "", "Output path (default depends on -page)")
	assetsFlag = flag.String("assets", "", "Icon directory with one sub-directory per reel")
	openFlag   = flag.Bool("open", false, "Open the page after writing it")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/tuner.log")
)

func main() {
	flag.Parse()

	logFile, err := logging.Setup(logging.Options{Debug: *debugFlag, FileName: "tuner.log"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	t, err := page.ParseTuner(*pageFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *assetsFlag != "" {
		cfg.Runtime.AssetsDir = *assetsFlag
	}

	out := *outFlag
	if out == "" {
		out = t.Output()
	}

	if err := page.BuildTuner(cfg, t, out); err != nil {
		log.WithError(err).WithField("page", t).Error("Tuner generation failed")
		os.Exit(1)
	}

	if *openFlag {
		if err := page.Open(out); err != nil {
			log.WithError(err).WithField("path", out).Warn("Could not open viewer")
		}
	}
}
