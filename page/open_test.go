package page

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/pkg/browser"
)

func TestOpenReleasesViewerOutput(t *testing.T) {
	var (
		opened string
		viewer io.Writer
	)
	orig := openFile
	openFile = func(path string) error {
		opened = path
		viewer = browser.Stdout
		_, err := io.WriteString(browser.Stdout, "viewer started\n")
		return err
	}
	defer func() { openFile = orig }()

	stdout := browser.Stdout
	if err := Open("logo.html"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if !filepath.IsAbs(opened) || filepath.Base(opened) != "logo.html" {
		t.Errorf("viewer got %q, want an absolute path to logo.html", opened)
	}
	if browser.Stdout != stdout {
		t.Error("browser.Stdout not restored")
	}
	if _, err := io.WriteString(viewer, "late\n"); err == nil {
		t.Error("log writer still open after Open returned")
	}
}
