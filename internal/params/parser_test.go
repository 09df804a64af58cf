package params

import (
	"strings"
	"testing"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []xmptag.Pair
		wantErr string
	}{
		{
			name:  "single pair",
			input: []string{"seed=42"},
			want:  []xmptag.Pair{{Key: "seed", Value: "42"}},
		},
		{
			name:  "order is kept",
			input: []string{"sampler=euler", "seed=42", "cfg=7.5"},
			want: []xmptag.Pair{
				{Key: "sampler", Value: "euler"},
				{Key: "seed", Value: "42"},
				{Key: "cfg", Value: "7.5"},
			},
		},
		{
			name:  "nil input",
			input: nil,
			want:  nil,
		},
		{
			name:  "empty value",
			input: []string{"note="},
			want:  []xmptag.Pair{{Key: "note", Value: ""}},
		},
		{
			name:  "value with equals",
			input: []string{"prompt=a=b c"},
			want:  []xmptag.Pair{{Key: "prompt", Value: "a=b c"}},
		},
		{
			name:  "key is trimmed",
			input: []string{" seed =1"},
			want:  []xmptag.Pair{{Key: "seed", Value: "1"}},
		},
		{
			name:    "missing equals",
			input:   []string{"noequalssign"},
			wantErr: "not in key=value format",
		},
		{
			name:    "empty key",
			input:   []string{"=value"},
			wantErr: "empty key",
		},
		{
			name:    "error on second pair",
			input:   []string{"good=pair", "bad"},
			wantErr: "not in key=value format",
		},
		{
			name:  "duplicate key keeps position, last value wins",
			input: []string{"seed=1", "cfg=7", "seed=2"},
			want:  []xmptag.Pair{{Key: "seed", Value: "2"}, {Key: "cfg", Value: "7"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyValuePairs(tt.input)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Length mismatch: got %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Pair %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := []xmptag.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	got := Merge(base, []xmptag.Pair{{Key: "b", Value: "3"}, {Key: "c", Value: "4"}})

	want := []xmptag.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "3"}, {Key: "c", Value: "4"}}
	if len(got) != len(want) {
		t.Fatalf("Length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pair %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if base[1].Value != "2" {
		t.Errorf("Merge must not modify base, got %+v", base)
	}
}
