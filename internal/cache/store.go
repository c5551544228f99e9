package cache

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"recruitdash-cache-api/internal/storage"
)

// now is a small indirection to allow test stubbing.
var now = time.Now

// Config holds per-store settings.
type Config struct {
	// DefaultTTL applies to entries stored without an explicit override.
	DefaultTTL time.Duration

	// MaxSize caps the number of entries. When a new key would exceed the
	// cap, the oldest-inserted entry is evicted first (FIFO, not LRU).
	// Zero means unbounded.
	MaxSize int

	// Persist mirrors entries to the durable medium when one is attached.
	Persist bool

	// Prefix namespaces this store's records in the durable medium.
	Prefix string

	// CleanupInterval enables a periodic sweep of expired entries when
	// positive. Expiry is always also checked lazily on access.
	CleanupInterval time.Duration
}

// Store is a bounded in-memory TTL cache with insertion-order (FIFO)
// eviction, hit/miss statistics, and optional best-effort mirroring to a
// durable key-value medium. Operations never fail observably: persistence
// errors are logged and swallowed so cache correctness is independent of
// the durability layer.
type Store struct {
	mu      sync.Mutex
	name    string
	cfg     Config
	entries map[string]*Entry
	order   []string

	medium storage.Medium

	hits      uint64
	misses    uint64
	evictions uint64

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// Stats is a snapshot of a store's counters.
type Stats struct {
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Evictions uint64  `json:"evictions"`
	Size      int     `json:"size"`
	HitRate   float64 `json:"hit_rate"`
}

// New creates a store. If cfg.Persist is set and medium is non-nil, any
// non-expired records under cfg.Prefix are rehydrated; corrupt records are
// skipped. A cleanup goroutine is started when cfg.CleanupInterval > 0.
func New(name string, cfg Config, medium storage.Medium) *Store {
	s := &Store{
		name:        name,
		cfg:         cfg,
		entries:     make(map[string]*Entry),
		medium:      medium,
		stopCleanup: make(chan struct{}),
	}

	if s.persistent() {
		s.rehydrate()
	}

	if cfg.CleanupInterval > 0 {
		go s.cleanup()
	}

	return s
}

func (s *Store) persistent() bool {
	return s.cfg.Persist && s.medium != nil
}

// Set stores a payload under key, using ttlOverride instead of the default
// TTL when given. Re-setting an existing key counts as a fresh insertion
// for eviction ordering. An empty key is ignored.
func (s *Store) Set(key string, data any, ttlOverride ...time.Duration) {
	if key == "" {
		return
	}

	ttl := s.cfg.DefaultTTL
	if len(ttlOverride) > 0 {
		ttl = ttlOverride[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		// Overwrite behaves as delete+insert so the key moves to the
		// FIFO tail.
		s.dropFromOrder(key)
	} else if s.cfg.MaxSize > 0 && len(s.entries) >= s.cfg.MaxSize {
		s.evictOldest()
	}

	entry := &Entry{
		Key:       key,
		Data:      data,
		Timestamp: now(),
		TTL:       ttl,
	}
	s.entries[key] = entry
	s.order = append(s.order, key)

	s.persistEntry(entry)
}

// Get returns the payload for key, or (nil, false) when absent or expired.
// Expired entries are purged on access, including their durable twin.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	if !exists {
		s.misses++
		return nil, false
	}
	if entry.isExpired(now()) {
		s.remove(key)
		s.misses++
		return nil, false
	}

	s.hits++
	return entry.Data, true
}

// Has reports whether key holds a fresh entry. It applies the same lazy
// expiry purge as Get but never touches the hit/miss counters.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	if !exists {
		return false
	}
	if entry.isExpired(now()) {
		s.remove(key)
		return false
	}
	return true
}

// Delete removes key and its durable twin. Returns whether an entry was
// actually removed.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		return false
	}
	s.remove(key)
	return true
}

// DeletePrefix removes every entry whose key starts with prefix and
// returns the number removed. Invalidation rules use this to clear whole
// resource families (all pages/filters of a list view) in one call.
func (s *Store) DeletePrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []string
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	for _, key := range matched {
		s.remove(key)
	}
	return len(matched)
}

// Clear empties the store and removes every durable record under this
// store's prefix. Records belonging to other stores are untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*Entry)
	s.order = nil

	if !s.persistent() {
		return
	}
	keys, err := s.medium.Keys(s.cfg.Prefix)
	if err != nil {
		log.Printf("[Cache:%s] clear: failed to list persisted records: %v", s.name, err)
		return
	}
	for _, k := range keys {
		if err := s.medium.RemoveItem(k); err != nil {
			log.Printf("[Cache:%s] clear: failed to remove %s: %v", s.name, k, err)
		}
	}
}

// Stats returns a snapshot of the store's counters. HitRate is 0 when no
// lookups have happened yet.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
		Size:      len(s.entries),
	}
	if total := s.hits + s.misses; total > 0 {
		st.HitRate = float64(s.hits) / float64(total)
	}
	return st
}

// Len returns the current number of entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Name returns the store's instance name.
func (s *Store) Name() string {
	return s.name
}

// Close stops the background cleanup goroutine, if any.
func (s *Store) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}

// remove drops key from memory and the durable medium. Caller holds s.mu.
func (s *Store) remove(key string) {
	delete(s.entries, key)
	s.dropFromOrder(key)

	if s.persistent() {
		if err := s.medium.RemoveItem(s.cfg.Prefix + key); err != nil {
			log.Printf("[Cache:%s] failed to remove persisted record %s: %v", s.name, key, err)
		}
	}
}

// dropFromOrder removes key from the insertion-order slice. Caller holds s.mu.
func (s *Store) dropFromOrder(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// evictOldest removes the first-inserted remaining entry. Caller holds s.mu.
func (s *Store) evictOldest() {
	if len(s.order) == 0 {
		return
	}
	oldest := s.order[0]
	s.remove(oldest)
	s.evictions++
}

// persistEntry mirrors an entry to the durable medium. Persistence is an
// optimization, never a correctness requirement: failures are logged and
// swallowed. Caller holds s.mu.
func (s *Store) persistEntry(entry *Entry) {
	if !s.persistent() {
		return
	}
	raw, err := encodeRecord(entry)
	if err != nil {
		log.Printf("[Cache:%s] failed to serialize entry %s: %v", s.name, entry.Key, err)
		return
	}
	if err := s.medium.SetItem(s.cfg.Prefix+entry.Key, raw); err != nil {
		log.Printf("[Cache:%s] failed to persist entry %s: %v", s.name, entry.Key, err)
	}
}

// rehydrate loads non-expired records under the store's prefix. Corrupt or
// expired records are removed from the medium and skipped; rehydration
// never fails construction. Entries are replayed in timestamp order so
// FIFO eviction order survives a restart.
func (s *Store) rehydrate() {
	keys, err := s.medium.Keys(s.cfg.Prefix)
	if err != nil {
		log.Printf("[Cache:%s] rehydrate: failed to list persisted records: %v", s.name, err)
		return
	}

	var loaded []*Entry
	for _, storageKey := range keys {
		raw, err := s.medium.GetItem(storageKey)
		if err != nil {
			continue
		}
		entry, err := decodeRecord(raw)
		if err != nil {
			log.Printf("[Cache:%s] rehydrate: skipping corrupt record %s: %v", s.name, storageKey, err)
			_ = s.medium.RemoveItem(storageKey)
			continue
		}
		if entry.isExpired(now()) {
			_ = s.medium.RemoveItem(storageKey)
			continue
		}
		loaded = append(loaded, entry)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Timestamp.Before(loaded[j].Timestamp)
	})

	for _, entry := range loaded {
		if s.cfg.MaxSize > 0 && len(s.entries) >= s.cfg.MaxSize {
			s.evictOldest()
		}
		s.entries[entry.Key] = entry
		s.order = append(s.order, entry.Key)
	}

	if len(loaded) > 0 {
		log.Printf("[Cache:%s] rehydrated %d entries", s.name, len(loaded))
	}
}

// cleanup periodically removes expired entries.
func (s *Store) cleanup() {
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stopCleanup:
			return
		}
	}
}

// removeExpired removes all expired entries.
func (s *Store) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := now()
	var expired []string
	for key, entry := range s.entries {
		if entry.isExpired(at) {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		s.remove(key)
	}
}
