package storage

import (
	"sort"
	"testing"
)

func TestMemoryMedium_Contract(t *testing.T) {
	m := NewMemoryMedium()

	if _, err := m.GetItem("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for absent key, got %v", err)
	}

	if err := m.SetItem("cache_api_a", "1"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	m.SetItem("cache_api_b", "2")
	m.SetItem("cache_jobs_a", "3")

	v, err := m.GetItem("cache_api_a")
	if err != nil || v != "1" {
		t.Fatalf("expected stored value, got v=%q err=%v", v, err)
	}

	keys, err := m.Keys("cache_api_")
	if err != nil {
		t.Fatalf("unexpected keys error: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "cache_api_a" || keys[1] != "cache_api_b" {
		t.Fatalf("unexpected prefix scan result: %v", keys)
	}

	if err := m.RemoveItem("cache_api_a"); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if err := m.RemoveItem("cache_api_a"); err != nil {
		t.Fatalf("removing an absent key must not error, got %v", err)
	}
	if _, err := m.GetItem("cache_api_a"); err != ErrNotFound {
		t.Fatalf("expected removed key to be absent")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 remaining items, got %d", m.Len())
	}
}

func TestMemoryMedium_Overwrite(t *testing.T) {
	m := NewMemoryMedium()

	m.SetItem("k", "old")
	m.SetItem("k", "new")

	v, _ := m.GetItem("k")
	if v != "new" {
		t.Fatalf("expected overwrite, got %q", v)
	}
}
