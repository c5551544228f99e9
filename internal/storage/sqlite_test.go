package storage

import (
	"path/filepath"
	"sort"
	"testing"
)

func newTestSQLiteMedium(t *testing.T) *SQLiteMedium {
	t.Helper()
	m, err := NewSQLiteMedium(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite medium: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSQLiteMedium_RoundTrip(t *testing.T) {
	m := newTestSQLiteMedium(t)

	if _, err := m.GetItem("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for absent key, got %v", err)
	}

	if err := m.SetItem("cache_jobs_k", `{"data":1}`); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	v, err := m.GetItem("cache_jobs_k")
	if err != nil || v != `{"data":1}` {
		t.Fatalf("expected stored value, got v=%q err=%v", v, err)
	}

	// Upsert replaces the record.
	if err := m.SetItem("cache_jobs_k", `{"data":2}`); err != nil {
		t.Fatalf("unexpected upsert error: %v", err)
	}
	v, _ = m.GetItem("cache_jobs_k")
	if v != `{"data":2}` {
		t.Fatalf("expected upserted value, got %q", v)
	}

	if err := m.RemoveItem("cache_jobs_k"); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if _, err := m.GetItem("cache_jobs_k"); err != ErrNotFound {
		t.Fatalf("expected removed key to be absent")
	}
}

func TestSQLiteMedium_KeysByPrefix(t *testing.T) {
	m := newTestSQLiteMedium(t)

	m.SetItem("cache_api_a", "1")
	m.SetItem("cache_api_b", "2")
	m.SetItem("cache_sys_a", "3")

	keys, err := m.Keys("cache_api_")
	if err != nil {
		t.Fatalf("unexpected keys error: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "cache_api_a" || keys[1] != "cache_api_b" {
		t.Fatalf("unexpected prefix scan result: %v", keys)
	}
}
