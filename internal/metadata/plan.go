package metadata

import (
	"fmt"
	"strings"

	"github.com/vvka-141/xmptag/internal/exiftool"
	"github.com/vvka-141/xmptag/internal/tags"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// Plan is the ExifTool work of one file write.
type Plan struct {
	// Clear runs before Assign. It is only set for Replace all on keywords.
	Clear []string

	// Assign holds the value assignments.
	Assign []string
}

// IsEmpty reports whether the plan needs no ExifTool invocation.
func (p Plan) IsEmpty() bool {
	return len(p.Clear) == 0 && len(p.Assign) == 0
}

// Invocations returns the non-empty argument lists in execution order.
func (p Plan) Invocations() [][]string {
	var out [][]string
	if len(p.Clear) > 0 {
		out = append(out, p.Clear)
	}
	if len(p.Assign) > 0 {
		out = append(out, p.Assign)
	}
	return out
}

// BuildWritePlan turns a write request into ExifTool assignments.
//
// raw is parsed as a tag payload for KindSubject and written verbatim for
// the scalar kinds. extra pairs are written to namespace for add and
// replace on every kind.
func BuildWritePlan(kind xmptag.MetadataKind, mode xmptag.WriteMode, raw, customField, namespace string, extra []xmptag.Pair) (Plan, error) {
	if !mode.IsValid() {
		return Plan{}, fmt.Errorf("write mode %s is not valid: %w", mode, xmptag.ErrInvalidConfig)
	}

	var plan Plan
	var fields []xmptag.Pair

	switch kind {
	case xmptag.KindSubject:
		payload := tags.Parse(raw)
		fields = payload.Fields
		switch mode {
		case xmptag.ModeAdd:
			for _, tag := range payload.Tags {
				plan.Assign = append(plan.Assign, remove(TagSubject, tag), add(TagSubject, tag))
			}
		case xmptag.ModeReplace:
			plan.Clear = []string{assign(TagSubject, "")}
			for _, tag := range payload.Tags {
				plan.Assign = append(plan.Assign, add(TagSubject, tag))
			}
		case xmptag.ModeDelete:
			for _, tag := range payload.Tags {
				plan.Assign = append(plan.Assign, remove(TagSubject, tag))
			}
		}

	case xmptag.KindDescription:
		plan.Assign = scalarAssign(TagDescription, raw, mode)

	case xmptag.KindCustom:
		field := ResolveCustomField(customField)
		if field == "" {
			return Plan{}, xmptag.ErrCustomFieldRequired
		}
		plan.Assign = scalarAssign(field, raw, mode)

	default:
		return Plan{}, fmt.Errorf("metadata type %s is not valid: %w", kind, xmptag.ErrInvalidConfig)
	}

	if mode != xmptag.ModeDelete {
		plan.Assign = append(plan.Assign, FieldArgs(namespace, append(fields, extra...))...)
	}
	return plan, nil
}

// InjectArgs appends every tag of payload to XMP-dc:Subject and writes its
// fields to namespace.
func InjectArgs(payload tags.Payload, namespace string) []string {
	args := make([]string, 0, len(payload.Tags)+len(payload.Fields))
	for _, tag := range payload.Tags {
		args = append(args, add(TagSubject, tag))
	}
	return append(args, FieldArgs(namespace, payload.Fields)...)
}

// FieldArgs assigns each pair to namespace:key. Pairs with an empty key
// are dropped.
func FieldArgs(namespace string, pairs []xmptag.Pair) []string {
	if len(pairs) == 0 {
		return nil
	}
	ns := ResolveNamespace(namespace)
	args := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			continue
		}
		args = append(args, assign(ns+":"+key, p.Value))
	}
	return args
}

// nonWritableGroups are reported by ExifTool but rejected on write.
var nonWritableGroups = map[string]bool{
	"XMP-x": true,
}

// SeparatorArgs makes ExifTool split list values on ", ", the separator it
// uses when printing them.
var SeparatorArgs = []string{"-sep", ", "}

// RestoreArgs re-emits entries read with Tool.QueryXMP as assignments.
// Entries without a group or in a non-writable group are skipped. The
// result is nil when nothing is restorable.
func RestoreArgs(entries []exiftool.Entry) []string {
	var args []string
	for _, e := range entries {
		group, _, ok := strings.Cut(e.Key, ":")
		if !ok || nonWritableGroups[group] || e.Value == "" {
			continue
		}
		args = append(args, assign(e.Key, e.Value))
	}
	if len(args) == 0 {
		return nil
	}
	return append(append([]string{}, SeparatorArgs...), args...)
}

// ExistingTags returns the keywords held by a XMP-dc:Subject entry.
func ExistingTags(entries []exiftool.Entry) []string {
	for _, e := range entries {
		if strings.EqualFold(e.Key, TagSubject) {
			return tags.Split(e.Value)
		}
	}
	return nil
}

// Without returns the tags of in that are not in drop.
func Without(in, drop []string) []string {
	if len(drop) == 0 {
		return in
	}
	skip := make(map[string]bool, len(drop))
	for _, d := range drop {
		skip[d] = true
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		if !skip[t] {
			out = append(out, t)
		}
	}
	return out
}

func scalarAssign(tag, raw string, mode xmptag.WriteMode) []string {
	if mode == xmptag.ModeDelete {
		return []string{assign(tag, "")}
	}
	return []string{assign(tag, raw)}
}

func assign(tag, value string) string { return "-" + tag + "=" + value }
func add(tag, value string) string    { return "-" + tag + "+=" + value }
func remove(tag, value string) string { return "-" + tag + "-=" + value }
