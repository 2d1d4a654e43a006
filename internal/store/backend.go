package store

// Backend persists one opaque blob per named collection. Every mutation
// rewrites the collection's blob wholesale; the backend is the sole source
// of truth for stored data.
type Backend interface {
	// ReadBlob returns the stored blob for name, or (nil, nil) if the
	// collection has never been written.
	ReadBlob(name string) ([]byte, error)

	// WriteBlob replaces the stored blob for name.
	WriteBlob(name string, data []byte) error

	// DeleteBlob removes the stored blob for name. Deleting a blob that
	// was never written is not an error.
	DeleteBlob(name string) error
}
