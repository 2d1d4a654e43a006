package model

import "time"

// Meta carries the identity and timestamp fields shared by every stored record.
// Embed it in an entity struct to make the entity storable.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordID returns the record's unique identifier within its collection.
func (m *Meta) RecordID() string { return m.ID }

// SetRecordID assigns the record's identifier. Called once, at creation.
func (m *Meta) SetRecordID(id string) { m.ID = id }

// Stamp sets CreatedAt on the first save and refreshes UpdatedAt on every save.
func (m *Meta) Stamp(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// Record is the read-side contract satisfied by every stored entity.
type Record interface {
	RecordID() string
}

// Mutable is the write-side contract the store uses to assign identity
// and maintain timestamps when saving.
type Mutable interface {
	Record
	SetRecordID(id string)
	Stamp(now time.Time)
}
