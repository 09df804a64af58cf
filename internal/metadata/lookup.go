package metadata

import (
	"fmt"
	"strings"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// Lookup finds the value of field in ExifTool's description-keyed output.
// Custom keys match exactly first, then ignoring case, spaces and any group
// prefix, so "XMP-comfyui:seed" finds "Seed" and "CreateDate" finds
// "Create Date".
func Lookup(values map[string]string, field xmptag.Field, custom string) (string, bool) {
	if field != xmptag.FieldCustom {
		v, ok := values[field.String()]
		return v, ok && v != ""
	}

	custom = strings.TrimSpace(custom)
	if custom == "" {
		return "", false
	}
	if v, ok := values[custom]; ok && v != "" {
		return v, true
	}

	want := foldKey(custom)
	for k, v := range values {
		if foldKey(k) == want && v != "" {
			return v, true
		}
	}
	return "", false
}

// NotFound is the text returned in place of a missing value.
func NotFound(field xmptag.Field, custom string) string {
	if field == xmptag.FieldCustom {
		return fmt.Sprintf("No %s Found", strings.TrimSpace(custom))
	}
	return fmt.Sprintf("No %s Found", field)
}

func foldKey(s string) string {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
