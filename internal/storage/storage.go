package storage

// Medium defines the durable key-value medium a cache store can mirror to.
// It is the server-side counterpart of the browser's localStorage contract:
// synchronous string-keyed get/set/remove plus prefix enumeration for
// rehydration and namespaced clears.
type Medium interface {
	// GetItem retrieves a value by key. Returns ErrNotFound if absent.
	GetItem(key string) (string, error)

	// SetItem stores a value. May fail (quota, connectivity); callers
	// treat persistence as best-effort and must not propagate the error.
	SetItem(key, value string) error

	// RemoveItem deletes a key. Removing an absent key is not an error.
	RemoveItem(key string) error

	// Keys returns all stored keys that start with prefix.
	Keys(prefix string) ([]string, error)

	// Close releases any resources held by the medium.
	Close() error
}

// StorageError is a sentinel error type for storage operations.
type StorageError string

func (e StorageError) Error() string { return string(e) }

const (
	// ErrNotFound indicates the key was not present in the medium.
	ErrNotFound StorageError = "storage: key not found"
)
