package layout

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML envelope around a record list.
type document struct {
	Records []Record `yaml:"records"`
}

// ReadYAML decodes a document of the form
//
//	records:
//	  - {tag: wall, col: 3, row: 4}
//	  - {tag: spawn, col: 0, row: 0}
//
// Unknown keys are rejected. Records with an unknown tag are dropped and
// reported as joined *RecordError values.
func ReadYAML(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("layout: decode yaml: %w", err)
	}

	out := make([]Record, 0, len(doc.Records))
	var errs []error
	for i, rec := range doc.Records {
		tag, err := ParseTag(string(rec.Tag))
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Record: rec, Err: err})
			continue
		}
		rec.Tag = tag
		out = append(out, rec)
	}

	return out, errors.Join(errs...)
}

// WriteYAML encodes records as a YAML document.
func WriteYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Records: records}); err != nil {
		return fmt.Errorf("layout: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("layout: encode yaml: %w", err)
	}

	return nil
}
