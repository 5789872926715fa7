package page

import (
	"path/filepath"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
)

var openFile = browser.OpenFile

// Open shows path in the platform viewer. Viewer output goes to the debug log
func Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	w := log.StandardLogger().WriterLevel(log.DebugLevel)
	defer w.Close()

	stdout, stderr := browser.Stdout, browser.Stderr
	browser.Stdout, browser.Stderr = w, w
	defer func() {
		browser.Stdout, browser.Stderr = stdout, stderr
	}()

	return openFile(abs)
}
