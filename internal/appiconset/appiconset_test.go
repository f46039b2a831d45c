package appiconset

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSpecsTable(t *testing.T) {
	if got := len(Specs); got != 17 {
		t.Fatalf("table length: got %d, want 17", got)
	}

	distinct := map[string]int{}
	for _, s := range Specs {
		if s.Size <= 0 {
			t.Errorf("%s: non-positive size %d", s.Name, s.Size)
		}
		if prev, ok := distinct[s.Name]; ok && prev != s.Size {
			t.Errorf("%s: listed with conflicting sizes %d and %d", s.Name, prev, s.Size)
		}
		distinct[s.Name] = s.Size
	}
	if got := len(distinct); got != 14 {
		t.Errorf("distinct file names: got %d, want 14", got)
	}

	// The icon iOS actually requires on modern iPhones.
	if got := distinct["Icon-App-60x60@2x.png"]; got != 120 {
		t.Errorf("Icon-App-60x60@2x.png: size %d, want 120", got)
	}
}

func TestGenerateWritesAllIcons(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := Generate(dir, &out); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, s := range Specs {
		f, err := os.Open(filepath.Join(dir, s.Name))
		if err != nil {
			t.Errorf("missing output: %v", err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s: decode: %v", s.Name, err)
			continue
		}
		if cfg.Width != s.Size || cfg.Height != s.Size {
			t.Errorf("%s: %dx%d, want %dx%d", s.Name, cfg.Width, cfg.Height, s.Size, s.Size)
		}
	}

	if got := strings.Count(out.String(), "Created "); got != len(Specs) {
		t.Errorf("progress lines: got %d, want %d", got, len(Specs))
	}
	if !strings.Contains(out.String(), "All app icons generated successfully!") {
		t.Errorf("missing completion summary in output:\n%s", out.String())
	}
}

func TestGenerateIdempotent(t *testing.T) {
	dir := t.TempDir()

	if err := Generate(dir, &bytes.Buffer{}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := readAll(t, dir)

	if err := Generate(dir, &bytes.Buffer{}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := readAll(t, dir)

	if len(first) != len(second) {
		t.Fatalf("file count changed: %d vs %d", len(first), len(second))
	}
	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Errorf("%s: bytes differ between runs", name)
		}
	}
}

func TestGenerateMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	var out bytes.Buffer

	err := Generate(dir, &out)
	if err == nil {
		t.Fatal("expected error for missing output directory")
	}
	if !strings.Contains(err.Error(), Specs[0].Name) {
		t.Errorf("error should name the failed file, got: %v", err)
	}
	// The batch aborts before reporting any success.
	if strings.Contains(out.String(), "Created ") {
		t.Errorf("no progress lines expected, got:\n%s", out.String())
	}
}

// readAll returns the content of every regular file in dir, keyed by name.
func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		files[e.Name()] = data
	}
	return files
}
