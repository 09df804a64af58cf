package components

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathCompleter_SingleDirectoryMatch(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "tagged"), 0755)
	os.Mkdir(filepath.Join(dir, "output"), 0755)

	c := NewPathCompleter(DirsOnly)
	result := c.Next(filepath.Join(dir, "tag"))

	if result != filepath.Join(dir, "tagged")+string(filepath.Separator) {
		t.Errorf("expected tagged directory with trailing separator, got: %s", result)
	}
}

func TestPathCompleter_FileMatch(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "exiftool.exe"), nil, 0755)

	c := NewPathCompleter(nil)
	result := c.Next(filepath.Join(dir, "exif"))

	if result != filepath.Join(dir, "exiftool.exe") {
		t.Errorf("expected exiftool.exe, got: %s", result)
	}
}

func TestPathCompleter_DirsOnlySkipsFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "photo.png"), nil, 0644)

	c := NewPathCompleter(DirsOnly)
	input := filepath.Join(dir, "pho")
	if result := c.Next(input); result != input {
		t.Errorf("expected input unchanged, got: %s", result)
	}
}

func TestPathCompleter_CyclesThroughMatches(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		os.Mkdir(filepath.Join(dir, name), 0755)
	}

	c := NewPathCompleter(DirsOnly)
	input := dir + string(filepath.Separator)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		r := c.Next(input)
		if !strings.HasPrefix(r, dir) {
			t.Errorf("expected result under %s, got: %s", dir, r)
		}
		seen[r] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected three distinct completions, got: %v", seen)
	}

	if again := c.Next(input); again != filepath.Join(dir, "alpha")+string(filepath.Separator) {
		t.Errorf("expected cycle to wrap to alpha, got: %s", again)
	}
}

func TestPathCompleter_SharedPrefixFirst(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "tagged_a"), 0755)
	os.Mkdir(filepath.Join(dir, "tagged_b"), 0755)

	c := NewPathCompleter(DirsOnly)
	result := c.Next(filepath.Join(dir, "t"))

	if result != filepath.Join(dir, "tagged_") {
		t.Errorf("expected shared prefix, got: %s", result)
	}
}

func TestPathCompleter_Reset(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "alpha"), 0755)
	os.Mkdir(filepath.Join(dir, "beta"), 0755)

	c := NewPathCompleter(DirsOnly)
	input := dir + string(filepath.Separator)
	first := c.Next(input)
	c.Reset()

	if again := c.Next(input); again != first {
		t.Errorf("expected reset to restart at %s, got: %s", first, again)
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		input, parent, prefix string
	}{
		{"", ".", ""},
		{".", ".", ""},
		{"ph", ".", "ph"},
		{"img/", "img", ""},
		{filepath.Join("img", "ph"), "img", "ph"},
	}
	for _, tt := range tests {
		parent, prefix := splitPath(tt.input)
		if parent != tt.parent || prefix != tt.prefix {
			t.Errorf("splitPath(%q) = (%q, %q), want (%q, %q)", tt.input, parent, prefix, tt.parent, tt.prefix)
		}
	}
}
