package layout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV decodes tag,col,row rows. Blank lines are ignored. Rows that do
// not have three fields, carry an unknown tag or non-integer coordinates
// are skipped and reported as joined *RecordError values next to the
// records that did decode. I/O failures abort with a plain error.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		out  []Record
		errs []error
	)
	for i := 0; ; i++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				errs = append(errs, &RecordError{Index: i, Err: err})
				continue
			}
			return nil, fmt.Errorf("layout: read csv: %w", err)
		}
		rec, err := parseRow(row)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Record: rec, Err: err})
			continue
		}
		out = append(out, rec)
	}

	return out, errors.Join(errs...)
}

func parseRow(row []string) (Record, error) {
	if len(row) != 3 {
		return Record{Tag: Tag(strings.Join(row, ","))}, fmt.Errorf("want 3 fields, got %d", len(row))
	}
	var (
		rec Record
		err error
	)
	if rec.Tag, err = ParseTag(row[0]); err != nil {
		return rec, err
	}
	if rec.Col, err = strconv.Atoi(strings.TrimSpace(row[1])); err != nil {
		return rec, fmt.Errorf("column: %w", err)
	}
	if rec.Row, err = strconv.Atoi(strings.TrimSpace(row[2])); err != nil {
		return rec, fmt.Errorf("row: %w", err)
	}

	return rec, nil
}

// WriteCSV encodes records as tag,col,row rows.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write([]string{string(r.Tag), strconv.Itoa(r.Col), strconv.Itoa(r.Row)}); err != nil {
			return fmt.Errorf("layout: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("layout: write csv: %w", err)
	}

	return nil
}
