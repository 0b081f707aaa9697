package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPageCache_SaveLoadRoundTrip(t *testing.T) {
	c := &PageCache{Dir: t.TempDir()}
	ctx := context.Background()

	url := "http://example.test/article"
	if err := c.Save(ctx, url, "text/html; charset=utf-8", []byte("<html>body</html>")); err != nil {
		t.Fatalf("save: %v", err)
	}
	body, ct, err := c.Load(ctx, url)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(body) != "<html>body</html>" {
		t.Fatalf("unexpected body: %q", body)
	}
	if ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", ct)
	}
}

func TestPageCache_LoadMissing(t *testing.T) {
	c := &PageCache{Dir: t.TempDir()}
	if _, _, err := c.Load(context.Background(), "http://example.test/absent"); err == nil {
		t.Fatalf("expected error for missing entry")
	}
}

func TestPurgeByAge_RemovesOnlyExpired(t *testing.T) {
	dir := t.TempDir()
	c := &PageCache{Dir: dir}
	ctx := context.Background()

	if err := c.Save(ctx, "http://example.test/fresh", "text/html", []byte("fresh")); err != nil {
		t.Fatalf("save fresh: %v", err)
	}
	if err := c.Save(ctx, "http://example.test/stale", "text/html", []byte("stale")); err != nil {
		t.Fatalf("save stale: %v", err)
	}
	// Age the stale entry by rewriting its SavedAt.
	staleKey := c.key("http://example.test/stale")
	meta := PageEntry{URL: "http://example.test/stale", ContentType: "text/html", SavedAt: time.Now().UTC().Add(-48 * time.Hour)}
	b, _ := json.Marshal(meta)
	if err := os.WriteFile(filepath.Join(dir, staleKey+".meta.json"), b, 0o644); err != nil {
		t.Fatalf("age meta: %v", err)
	}

	removed, err := PurgeByAge(dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	if _, _, err := c.Load(ctx, "http://example.test/fresh"); err != nil {
		t.Fatalf("fresh entry should survive: %v", err)
	}
	if _, _, err := c.Load(ctx, "http://example.test/stale"); err == nil {
		t.Fatalf("stale entry should be gone")
	}
}

func TestClearDir_RecreatesEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := &PageCache{Dir: dir}
	if err := c.Save(context.Background(), "http://example.test/x", "text/html", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ClearDir(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("dir should exist after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, found %d entries", len(entries))
	}
}
