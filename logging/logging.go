// Package logging configures the shared logrus logger for the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// LogDir is relative to the working directory
	LogDir      = "logs"
	maxLogSize  = 10 * 1024 * 1024
	rotateStamp = "20060102-150405"
)

// Options selects where log output goes
type Options struct {
	// Debug writes everything at debug level to LogDir/FileName
	Debug bool
	// FileName is the debug log file, one per tool
	FileName string
	// Level applies when Debug is off
	Level string
	// Quiet discards output when Debug is off; terminal UIs set it so log
	// lines never land on the screen
	Quiet bool
}

// Setup configures the standard logrus logger. The returned file is non-nil
// only in debug mode and must be closed by the caller
func Setup(opts Options) (*os.File, error) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !opts.Debug {
		level, err := log.ParseLevel(orDefault(opts.Level, "info"))
		if err != nil {
			return nil, err
		}
		log.SetLevel(level)
		if opts.Quiet {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(os.Stderr)
		}
		return nil, nil
	}

	if err := os.MkdirAll(LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(LogDir, orDefault(opts.FileName, "haa.log"))
	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.WithField("pid", os.Getpid()).Debug("Logging started")
	return f, nil
}

// rotate renames an oversized log file with a timestamp suffix
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := path[:len(path)-len(ext)] + "-" + time.Now().Format(rotateStamp) + ext
	_ = os.Rename(path, rotated)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
