package exiftool_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/xmptag/internal/exiftool"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   map[string]string
	}{
		{
			name:   "empty",
			stdout: "",
			want:   map[string]string{},
		},
		{
			name:   "single pair",
			stdout: "Subject                         : cat, dog\n",
			want:   map[string]string{"Subject": "cat, dog"},
		},
		{
			name: "value containing colons",
			stdout: "Create Date                     : 2024:01:02 03:04:05\n" +
				"Modify Date                     : 2024:05:06 07:08:09\n",
			want: map[string]string{
				"Create Date": "2024:01:02 03:04:05",
				"Modify Date": "2024:05:06 07:08:09",
			},
		},
		{
			name:   "lines without colon are skipped",
			stdout: "    1 image files updated\nDescription : hello\n",
			want:   map[string]string{"Description": "hello"},
		},
		{
			name:   "windows line endings",
			stdout: "Subject : a\r\nDescription : b\r\n",
			want:   map[string]string{"Subject": "a", "Description": "b"},
		},
		{
			name:   "repeated key keeps last",
			stdout: "Subject : a\nSubject : b\n",
			want:   map[string]string{"Subject": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exiftool.ParseOutput(tt.stdout)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOutput() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseGroupedOutput(t *testing.T) {
	stdout := "[XMP-x]         XMPToolkit                      : Image::ExifTool 12.76\n" +
		"[XMP-dc]        Subject                         : cat, dog\n" +
		"[XMP-dc]        Description                     : A: colon\n" +
		"[XMP-comfyui]   Seed                            : 42\n" +
		"garbage line\n" +
		"\n"

	got := exiftool.ParseGroupedOutput(stdout)

	want := []exiftool.Entry{
		{Key: "XMP-x:XMPToolkit", Value: "Image::ExifTool 12.76"},
		{Key: "XMP-dc:Subject", Value: "cat, dog"},
		{Key: "XMP-dc:Description", Value: "A: colon"},
		{Key: "XMP-comfyui:Seed", Value: "42"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseGroupedOutput() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGroupedOutput_UngroupedAndMalformed(t *testing.T) {
	got := exiftool.ParseGroupedOutput("Subject : a\n[XMP-dc Subject : b\n[XMP-dc] : c\n")
	assert.Equal(t, []exiftool.Entry{{Key: "Subject", Value: "a"}}, got)
}
