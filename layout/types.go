package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is matched by every *RecordError.
var ErrInvalidRecord = errors.New("layout: invalid record")

// Tag names what a record places on its cell.
type Tag string

// Known record tags.
const (
	TagWall   Tag = "wall"
	TagTarget Tag = "target"
	TagSpawn  Tag = "spawn"
)

// ParseTag normalises s to a known Tag.
func ParseTag(s string) (Tag, error) {
	switch t := Tag(strings.ToLower(strings.TrimSpace(s))); t {
	case TagWall, TagTarget, TagSpawn:
		return t, nil
	default:
		return t, fmt.Errorf("unknown tag %q", s)
	}
}

// Record is one persisted cell assignment.
type Record struct {
	Tag Tag `yaml:"tag"`
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// String renders r in its CSV form.
func (r Record) String() string {
	return fmt.Sprintf("%s,%d,%d", r.Tag, r.Col, r.Row)
}

// RecordError reports a record that could not be decoded or applied.
// Index is the zero-based position of the record in its input.
type RecordError struct {
	Index  int
	Record Record
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("layout: record %d (%v): %v", e.Index, e.Record, e.Err)
}

// Unwrap exposes both ErrInvalidRecord and the underlying cause.
func (e *RecordError) Unwrap() []error {
	return []error{ErrInvalidRecord, e.Err}
}
