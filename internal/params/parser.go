package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into fields.
//
// Example:
//
//	fields, err := ParseKeyValuePairs([]string{"seed=42", "sampler=euler"})
//	// Returns: []xmptag.Pair{{"seed", "42"}, {"sampler", "euler"}}
func ParseKeyValuePairs(pairs []string) ([]xmptag.Pair, error) {
	var result []xmptag.Pair

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("field %q is not in key=value format (example: --set seed=42)", pair)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("field has empty key: %q", pair)
		}

		result = Merge(result, []xmptag.Pair{{Key: key, Value: value}})
	}

	return result, nil
}

// Merge returns base with every pair of overrides applied: existing keys
// take the new value in place, new keys are appended.
func Merge(base, overrides []xmptag.Pair) []xmptag.Pair {
	out := append([]xmptag.Pair(nil), base...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Key == o.Key {
				out[i].Value = o.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}
