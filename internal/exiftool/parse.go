package exiftool

import "strings"

// Entry is one group-qualified tag value, e.g. {"XMP-dc:Subject", "a, b"}.
type Entry struct {
	Key   string
	Value string
}

// ParseOutput parses ExifTool's line-oriented "Key : Value" output. Each
// line is split on its first colon and both sides are trimmed; lines
// without a colon are ignored. A repeated key keeps its last value.
func ParseOutput(stdout string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}

// ParseGroupedOutput parses "-s -G1" output such as
//
//	[XMP-dc]        Subject                         : a, b
//
// into entries keyed "XMP-dc:Subject". Lines without a group prefix fall
// back to the bare tag name.
func ParseGroupedOutput(stdout string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		group := ""
		if strings.HasPrefix(line, "[") {
			end := strings.Index(line, "]")
			if end < 0 {
				continue
			}
			group = line[1:end]
			line = strings.TrimSpace(line[end+1:])
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		key := name
		if group != "" {
			key = group + ":" + name
		}
		entries = append(entries, Entry{Key: key, Value: strings.TrimSpace(value)})
	}
	return entries
}

func trimLine(s string) string {
	return strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
}
