package cache

import (
	"encoding/json"
	"time"
)

// Entry wraps a cached payload with its expiry metadata. The key is
// duplicated inside the entry so a persisted record is self-describing.
type Entry struct {
	Key       string
	Data      any
	Timestamp time.Time
	TTL       time.Duration
}

// isExpired reports whether the entry is stale at the given instant.
// A negative TTL makes the entry permanently expired.
func (e *Entry) isExpired(at time.Time) bool {
	return at.Sub(e.Timestamp) > e.TTL
}

// persistedRecord is the JSON wire format for durable records:
// {"data": ..., "timestamp": <epoch ms>, "ttl": <ms>, "key": "..."}
type persistedRecord struct {
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
	TTL       int64  `json:"ttl"`
	Key       string `json:"key"`
}

// encodeRecord serializes an entry for the durable medium.
func encodeRecord(e *Entry) (string, error) {
	rec := persistedRecord{
		Data:      e.Data,
		Timestamp: e.Timestamp.UnixMilli(),
		TTL:       e.TTL.Milliseconds(),
		Key:       e.Key,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeRecord parses a durable record back into an entry. Records that are
// not valid JSON or miss the key field are rejected so rehydration can skip
// them without failing construction.
func decodeRecord(raw string) (*Entry, error) {
	var rec persistedRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, err
	}
	if rec.Key == "" {
		return nil, CacheError("persisted record missing key")
	}
	return &Entry{
		Key:       rec.Key,
		Data:      rec.Data,
		Timestamp: time.UnixMilli(rec.Timestamp),
		TTL:       time.Duration(rec.TTL) * time.Millisecond,
	}, nil
}

// CacheError is a sentinel error type for cache internals.
type CacheError string

func (e CacheError) Error() string { return string(e) }
