package icon

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/haa-logo/config"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hammer.svg", testSVG)
	writeFile(t, dir, "anchor.svg", testSVG)
	writeFile(t, dir, "notes.txt", "not an icon")
	writeFile(t, dir, ".hidden.svg", testSVG)
	writeFile(t, dir, "broken.svg", "<html>no graphic here</html>")
	if err := os.Mkdir(filepath.Join(dir, "nested.svg"), 0755); err != nil {
		t.Fatal(err)
	}

	icons, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"anchor", "hammer"}
	if got := Names(icons); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	if icons[0].Markup != testSVG {
		t.Errorf("Markup not preserved: %q", icons[0].Markup)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	icons, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing directory should not error, got %v", err)
	}
	if icons == nil || len(icons) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", icons)
	}
}

func TestReadMarkupUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.svg", "just text")

	_, err := readMarkup(filepath.Join(dir, "plain.svg"))
	var ue *UnreadableError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnreadableError, got %v", err)
	}
	if !errors.Is(err, errNoGraphic) {
		t.Errorf("expected errNoGraphic cause, got %v", ue.Err)
	}

	_, err = readMarkup(filepath.Join(dir, "gone.svg"))
	if !errors.As(err, &ue) {
		t.Errorf("expected UnreadableError for missing file, got %v", err)
	}
}

func testConfig(assets string) config.Config {
	cfg := config.Default()
	cfg.Runtime.AssetsDir = assets
	return cfg
}

func TestLoadReels(t *testing.T) {
	assets := t.TempDir()
	h := filepath.Join(assets, "h_reel")
	a := filepath.Join(assets, "a_reel")
	for _, d := range []string{h, a} {
		if err := os.Mkdir(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, h, "heart.svg", testSVG)
	writeFile(t, h, "human.svg", testSVG)
	writeFile(t, a, "alien.svg", testSVG)
	writeFile(t, a, "apple.svg", testSVG)
	writeFile(t, a, "anchor.svg", testSVG)

	reels, err := LoadReels(testConfig(assets))
	if err != nil {
		t.Fatalf("LoadReels failed: %v", err)
	}
	if len(reels) != 3 {
		t.Fatalf("expected 3 reels, got %d", len(reels))
	}
	if got := Names(reels[0]); !reflect.DeepEqual(got, []string{"heart", "human"}) {
		t.Errorf("reel 0 = %v", got)
	}
	if got := Names(reels[2]); !reflect.DeepEqual(got, []string{"alien", "anchor", "apple"}) {
		t.Errorf("reel 2 = %v", got)
	}

	// Augmentation applied
	if !strings.Contains(reels[0][1].Markup, `class="v-shape v-rect"`) {
		t.Error("human icon should carry vitruvian shapes")
	}
	if !strings.Contains(reels[1][0].Markup, `class="eye-cover left-eye"`) {
		t.Error("alien icon should carry eye covers")
	}
	if strings.Contains(reels[0][0].Markup, "v-shape") || strings.Contains(reels[0][0].Markup, "eye-cover") {
		t.Error("heart icon should not be augmented")
	}
}

func TestLoadReelsMissing(t *testing.T) {
	assets := t.TempDir()
	if err := os.Mkdir(filepath.Join(assets, "h_reel"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(assets, "h_reel"), "heart.svg", testSVG)

	reels, err := LoadReels(testConfig(assets))
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("expected ErrAssetMissing, got %v", err)
	}
	if reels != nil {
		t.Error("no reels should be returned on failure")
	}
}

func TestFindFallsBack(t *testing.T) {
	assets := t.TempDir()
	h := filepath.Join(assets, "h_reel")
	if err := os.Mkdir(h, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, h, "alien.svg", testSVG)

	ic, err := Find(assets, "alien", "a_reel", "h_reel")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if ic.Name != "alien" || ic.Markup != testSVG {
		t.Errorf("unexpected icon %+v", ic)
	}

	if _, err := Find(assets, "human", "a_reel", "h_reel"); !errors.Is(err, ErrAssetMissing) {
		t.Errorf("expected ErrAssetMissing, got %v", err)
	}
}
