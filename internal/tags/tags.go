// Package tags parses metadata payloads into keyword lists and extra fields.
//
// A payload is either JSON or comma separated text:
//
//	cat, dog, outdoor
//	["cat", "dog"]
//	{"tags": ["cat", "dog"], "seed": 42, "sampler": "euler"}
//
// JSON objects contribute their "tags" entry as keywords and every other
// scalar entry as a Pair, in document order.
package tags

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// TagsKey is the JSON object key holding the keyword list.
const TagsKey = "tags"

// Payload is a parsed metadata payload.
type Payload struct {
	Tags   []string
	Fields []xmptag.Pair
}

// IsEmpty reports whether the payload carries nothing to write.
func (p Payload) IsEmpty() bool {
	return len(p.Tags) == 0 && len(p.Fields) == 0
}

// Parse interprets raw as JSON when it is a JSON object or array, and as
// comma separated tags otherwise.
func Parse(raw string) Payload {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Payload{}
	}

	if gjson.Valid(trimmed) {
		doc := gjson.Parse(trimmed)
		switch {
		case doc.IsObject():
			return parseObject(doc)
		case doc.IsArray():
			return Payload{Tags: Normalize(arrayStrings(doc))}
		}
	}

	return Payload{Tags: Split(raw)}
}

// Split splits comma separated text into normalized tags.
func Split(raw string) []string {
	return Normalize(strings.Split(raw, ","))
}

// Normalize trims every tag, drops empty ones and removes duplicates,
// keeping the first occurrence.
func Normalize(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func parseObject(doc gjson.Result) Payload {
	var p Payload
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == TagsKey {
			if value.IsArray() {
				p.Tags = append(p.Tags, arrayStrings(value)...)
			} else if v, ok := scalar(value); ok {
				p.Tags = append(p.Tags, strings.Split(v, ",")...)
			}
			return true
		}

		if v, ok := scalar(value); ok {
			p.Fields = append(p.Fields, xmptag.Pair{Key: name, Value: v})
		}
		return true
	})
	p.Tags = Normalize(p.Tags)
	return p
}

func arrayStrings(arr gjson.Result) []string {
	var out []string
	arr.ForEach(func(_, value gjson.Result) bool {
		if v, ok := scalar(value); ok {
			out = append(out, v)
		} else if value.Type == gjson.JSON {
			out = append(out, value.Raw)
		}
		return true
	})
	return out
}

// scalar renders strings, numbers and booleans. Numbers keep their source
// text so "1.50" is not rewritten as "1.5".
func scalar(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.String:
		return v.String(), true
	case gjson.Number:
		return v.Raw, true
	case gjson.True:
		return "true", true
	case gjson.False:
		return "false", true
	default:
		return "", false
	}
}
