package components

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PathCompleter completes filesystem paths and cycles through the matches
// on repeated calls with the same directory.
//
//	c := NewPathCompleter(DirsOnly)
//	input.SetValue(c.Next(input.Value())) // on Tab
//	c.Reset()                             // on any other key
type PathCompleter struct {
	accept  func(os.DirEntry) bool
	matches []string
	index   int
	parent  string
	active  bool
}

// DirsOnly accepts directories.
func DirsOnly(e os.DirEntry) bool { return e.IsDir() }

// AnyEntry accepts files and directories.
func AnyEntry(os.DirEntry) bool { return true }

// NewPathCompleter creates a completer offering the entries accept allows.
// A nil accept behaves like AnyEntry.
func NewPathCompleter(accept func(os.DirEntry) bool) *PathCompleter {
	if accept == nil {
		accept = AnyEntry
	}
	return &PathCompleter{accept: accept}
}

// Next returns the next completion of input. The first call for a directory
// extends input to the longest shared prefix when that adds characters;
// later calls cycle through the matches.
func (c *PathCompleter) Next(input string) string {
	parent, prefix := splitPath(input)

	if !c.active || parent != c.parent {
		c.active = true
		c.parent = parent
		c.index = 0
		c.matches = c.scan(parent, prefix)
		if len(c.matches) == 0 {
			return input
		}
		if len(c.matches) > 1 {
			if shared := filepath.Join(parent, sharedPrefix(c.matches)); len(shared) > len(input) {
				return shared
			}
		}
		return c.format(c.matches[0])
	}

	if len(c.matches) == 0 {
		return input
	}
	c.index = (c.index + 1) % len(c.matches)
	return c.format(c.matches[c.index])
}

// Reset forgets the current cycle.
func (c *PathCompleter) Reset() {
	c.active = false
	c.matches = nil
	c.index = 0
	c.parent = ""
}

func (c *PathCompleter) scan(parent, prefix string) []string {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil
	}
	prefix = strings.ToLower(prefix)

	var out []string
	for _, e := range entries {
		if c.accept(e) && strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

// format joins name to the current directory and marks directories with a
// trailing separator.
func (c *PathCompleter) format(name string) string {
	full := filepath.Join(c.parent, name)
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		full += string(filepath.Separator)
	}
	return full
}

// splitPath splits input into the directory to list and the name prefix.
//
//	"./img/ph" -> ("img", "ph")
//	"./img/"   -> ("./img", "")
//	"ph"       -> (".", "ph")
//	""         -> (".", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}
	if strings.HasSuffix(input, "/") || strings.HasSuffix(input, string(filepath.Separator)) {
		return strings.TrimRight(input, `/\`), ""
	}
	return filepath.Dir(input), filepath.Base(input)
}

// sharedPrefix returns the case-insensitive common prefix of names, in the
// spelling of the first name.
func sharedPrefix(names []string) string {
	first := names[0]
	n := len(first)
	for _, s := range names[1:] {
		i := 0
		for i < n && i < len(s) && strings.EqualFold(first[i:i+1], s[i:i+1]) {
			i++
		}
		n = i
	}
	return first[:n]
}
