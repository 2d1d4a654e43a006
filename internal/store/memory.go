package store

// MemoryBackend is a map-backed Backend for tests and ephemeral runs.
type MemoryBackend struct {
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) ReadBlob(name string) ([]byte, error) {
	data, ok := b.blobs[name]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (b *MemoryBackend) WriteBlob(name string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	b.blobs[name] = cp
	return nil
}

func (b *MemoryBackend) DeleteBlob(name string) error {
	delete(b.blobs, name)
	return nil
}
