// Package models defines client-side data models used by the Menacor Vital CLI.
package models

// User is an account row in the local store. Identity key is the username
// (unique constraint); the numeric id never leaves the device.
type User struct {
	ID        int64
	Username  string
	Password  string
	FullName  *string
	Birthdate string
	Email     *string
	CreatedAt string
}

// Vital is one vital-sign reading. The numeric fields are optional: a reading
// may carry only pressure, only glucose, or just a note.
type Vital struct {
	ID        int64
	UserID    int64
	Date      string
	Systolic  *int64
	Diastolic *int64
	Glucose   *float64
	Notes     *string
	CreatedAt string
	UpdatedAt string
}

// OutboxEntry is one pending remote replication operation. Rows are
// append-only: once Processed is set the entry is never touched again, and
// entries are never deleted, so the table doubles as an audit log.
type OutboxEntry struct {
	ID        int64
	Kind      EntityKind
	EntityID  int64
	Action    Action
	Payload   []byte
	Processed bool
	CreatedAt string
}
