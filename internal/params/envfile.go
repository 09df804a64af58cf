package params

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// ParseEnvFile parses fields written in .env format and returns them in
// file order. A repeated key keeps its first position and its last value.
//
// Format rules:
// - Lines starting with # are comments
// - Empty lines are ignored
// - Format: KEY=VALUE, optionally prefixed with "export "
// - Whitespace around = is trimmed
// - Values can be quoted with single or double quotes
// - Unquoted values are trimmed
//
// Variable expansion and multiline values are not supported.
func ParseEnvFile(content []byte) ([]xmptag.Pair, error) {
	var result []xmptag.Pair
	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid format, expected KEY=VALUE", lineNum)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNum)
		}

		result = Merge(result, []xmptag.Pair{{Key: key, Value: unquote(strings.TrimSpace(value))}})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading content: %w", err)
	}

	return result, nil
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// LoadFieldsFile reads and parses a fields file.
func LoadFieldsFile(path string) ([]xmptag.Pair, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields file: %w", err)
	}
	fields, err := ParseEnvFile(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}
