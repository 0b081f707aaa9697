package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingURLColumn is returned when an input table lacks the url column
// the pipeline depends on.
var ErrMissingURLColumn = errors.New("input table has no url column")

// Record is one row keyed by column name. Columns absent from a row read as
// the empty string.
type Record map[string]string

// Table is an ordered-column collection of records. Column order is the
// header order of the file it was loaded from, plus any columns appended
// later; it is preserved verbatim on save so re-runs against an already
// enriched file round-trip cleanly.
type Table struct {
	Columns []string
	Rows    []Record
}

// Load reads a CSV file with a header row. A missing file is the caller's
// fatal condition; the wrapped os error is returned untouched so callers can
// test it with errors.Is(err, os.ErrNotExist).
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return &Table{}, nil
	}
	t := &Table{Columns: append([]string(nil), all[0]...)}
	for _, line := range all[1:] {
		rec := make(Record, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(line) {
				rec[col] = line[i]
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// Save writes the table to path as CSV, header first. The write goes through
// a temp file in the same directory and a rename so an interrupted run never
// leaves a truncated table behind.
func (t *Table) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	line := make([]string, len(t.Columns))
	for _, rec := range t.Rows {
		for i, col := range t.Columns {
			line[i] = rec[col]
		}
		if err := w.Write(line); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// HasColumn reports whether name is in the header.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumns appends each named column that is not already present,
// keeping existing column order intact.
func (t *Table) EnsureColumns(names ...string) {
	for _, n := range names {
		if !t.HasColumn(n) {
			t.Columns = append(t.Columns, n)
		}
	}
}

// RequireColumn validates that the named column exists. Only url is required
// by the pipeline; everything else passes through unchanged.
func (t *Table) RequireColumn(name string) error {
	if !t.HasColumn(name) {
		if name == "url" {
			return ErrMissingURLColumn
		}
		return fmt.Errorf("input table has no %s column", name)
	}
	return nil
}
