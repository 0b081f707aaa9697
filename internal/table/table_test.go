package table

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_ReadsHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	writeFile(t, in, "url,date,theme,title\nhttp://x/a,2024-01-02,markets,Title A\nhttp://x/b,2024-01-03,policy,Title B\n")

	tbl, err := Load(in)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(tbl.Columns, []string{"url", "date", "theme", "title"}) {
		t.Fatalf("unexpected columns: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[1]["title"] != "Title B" {
		t.Fatalf("unexpected row value: %q", tbl.Rows[1]["title"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestSaveLoad_RoundTripPreservesColumnOrder(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	tbl := &Table{
		Columns: []string{"url", "title", "content"},
		Rows: []Record{
			{"url": "http://x/a", "title": "A", "content": "body, with comma"},
			{"url": "http://x/b", "title": "B"},
		},
	}
	if err := tbl.Save(out); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(got.Columns, tbl.Columns) {
		t.Fatalf("column order changed: %v", got.Columns)
	}
	if got.Rows[0]["content"] != "body, with comma" {
		t.Fatalf("quoted field corrupted: %q", got.Rows[0]["content"])
	}
	if got.Rows[1]["content"] != "" {
		t.Fatalf("missing value should read empty, got %q", got.Rows[1]["content"])
	}
}

func TestEnsureColumns_AppendsOnlyMissing(t *testing.T) {
	tbl := &Table{Columns: []string{"url", "content"}}
	tbl.EnsureColumns("content", "word_count")
	if !reflect.DeepEqual(tbl.Columns, []string{"url", "content", "word_count"}) {
		t.Fatalf("unexpected columns: %v", tbl.Columns)
	}
}

func TestRequireColumn(t *testing.T) {
	tbl := &Table{Columns: []string{"date", "title"}}
	if err := tbl.RequireColumn("url"); !errors.Is(err, ErrMissingURLColumn) {
		t.Fatalf("expected ErrMissingURLColumn, got %v", err)
	}
	tbl.Columns = append(tbl.Columns, "url")
	if err := tbl.RequireColumn("url"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
