package metadata

import (
	"strings"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// Group-qualified XMP tag names.
const (
	TagSubject     = "XMP-dc:Subject"
	TagDescription = "XMP-dc:Description"
	TagCreateDate  = "XMP-xmp:CreateDate"
	TagModifyDate  = "XMP-xmp:ModifyDate"
)

// DefaultCustomGroup is the group given to custom field names without one.
const DefaultCustomGroup = "XMP-dc"

// ResolveCustomField qualifies a bare custom field name with the XMP-dc
// group. Names that already carry a group are returned trimmed.
func ResolveCustomField(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ":") {
		return name
	}
	return DefaultCustomGroup + ":" + name
}

// ResolveNamespace returns ns, or the default custom namespace when empty.
// A missing "XMP-" prefix is added.
func ResolveNamespace(ns string) string {
	ns = strings.TrimSuffix(strings.TrimSpace(ns), ":")
	if ns == "" {
		return xmptag.DefaultCustomNamespace
	}
	if !strings.HasPrefix(strings.ToUpper(ns), "XMP-") {
		return "XMP-" + ns
	}
	return ns
}

// QueryTags returns the tags a read of field requests. The four fixed
// properties are always queried; a custom read adds its key as given, so
// ExifTool may match it in any group.
func QueryTags(field xmptag.Field, custom string) []string {
	out := []string{TagSubject, TagDescription, TagCreateDate, TagModifyDate}
	if field == xmptag.FieldCustom {
		if custom = strings.TrimSpace(custom); custom != "" {
			out = append(out, custom)
		}
	}
	return out
}
