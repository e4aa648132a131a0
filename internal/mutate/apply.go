package mutate

import (
	"slices"
	"strings"

	"dc-directory-api-server/internal/models"
)

type node struct {
	field    *Field
	children map[string]*node
}

var root = buildTree(table)

func buildTree(fields []Field) *node {
	r := &node{children: map[string]*node{}}
	for i := range fields {
		n := r
		for _, seg := range strings.Split(fields[i].Path, ".") {
			child, ok := n.children[seg]
			if !ok {
				child = &node{children: map[string]*node{}}
				n.children[seg] = child
			}
			n = child
		}
		n.field = &fields[i]
	}
	return r
}

// Lookup resolves a dotted path to its field.
func Lookup(path string) (Field, error) {
	return lookup(path, strings.Split(path, "."))
}

func lookup(path string, segments []string) (Field, error) {
	if len(segments) == 0 {
		return Field{}, &PathError{Path: path, Reason: "is empty"}
	}
	n := root
	for i, seg := range segments {
		if seg == "" {
			return Field{}, &PathError{Path: path, Segment: seg, Reason: "is empty"}
		}
		if n.field != nil {
			return Field{}, &PathError{Path: path, Segment: segments[i-1], Reason: "is not a group"}
		}
		child, ok := n.children[seg]
		if !ok {
			if i == 0 && seg == "id" {
				return Field{}, &PathError{Path: path, Segment: seg, Reason: "cannot be changed"}
			}
			return Field{}, &PathError{Path: path, Segment: seg, Reason: "does not exist"}
		}
		n = child
	}
	if n.field == nil {
		return Field{}, &PathError{Path: path, Segment: segments[len(segments)-1], Reason: "is a group, not a field"}
	}
	return *n.field, nil
}

// Apply returns a copy of dc with the leaf at path set to raw. dc itself is
// never modified, also when an error is returned.
func Apply(dc models.DataCenter, path string, raw any) (models.DataCenter, error) {
	return ApplySegments(dc, strings.Split(path, "."), raw)
}

// ApplySegments is Apply for a path that is already split.
func ApplySegments(dc models.DataCenter, segments []string, raw any) (models.DataCenter, error) {
	f, err := lookup(strings.Join(segments, "."), segments)
	if err != nil {
		return dc, err
	}
	return f.set(dc, raw)
}

// ApplyAll applies changes in order. The first failure aborts the batch and
// the original record is returned with the error.
func ApplyAll(dc models.DataCenter, changes []Change) (models.DataCenter, error) {
	out := dc
	for _, c := range changes {
		next, err := Apply(out, c.Path, c.Value)
		if err != nil {
			return dc, err
		}
		out = next
	}
	return out, nil
}

// Get reads the current value of the leaf at path.
func Get(dc models.DataCenter, path string) (any, error) {
	f, err := Lookup(path)
	if err != nil {
		return nil, err
	}
	return f.value(dc), nil
}

func (f Field) value(dc models.DataCenter) any {
	v := f.get(dc)
	if l, ok := v.([]string); ok {
		return slices.Clone(l)
	}
	return v
}

// Fields lists every editable leaf in form order.
func Fields() []Field {
	return slices.Clone(table)
}

// FormValue is one prefilled control of the admin edit form.
type FormValue struct {
	Path  string `json:"path"`
	Kind  Kind   `json:"kind"`
	Value any    `json:"value"`
}

// Form returns the current value of every editable leaf of dc.
func Form(dc models.DataCenter) []FormValue {
	out := make([]FormValue, 0, len(table))
	for _, f := range table {
		out = append(out, FormValue{Path: f.Path, Kind: f.Kind, Value: f.value(dc)})
	}
	return out
}
