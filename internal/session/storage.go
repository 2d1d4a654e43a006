package session

// Storage persists the single serialized session slot. Absence of a
// stored value means logged out.
type Storage interface {
	// Read returns the stored session bytes, or (nil, nil) when no
	// session is stored.
	Read() ([]byte, error)

	// Write replaces the stored session bytes.
	Write(data []byte) error

	// Clear removes the stored session. Clearing an empty slot is not
	// an error.
	Clear() error
}

// MemoryStorage is an in-process Storage for tests.
type MemoryStorage struct {
	data []byte
}

func (m *MemoryStorage) Read() ([]byte, error) {
	return m.data, nil
}

func (m *MemoryStorage) Write(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data = cp
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.data = nil
	return nil
}
