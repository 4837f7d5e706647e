// Package models defines server-side data models. The server keeps its own
// replica schema, keyed independently from any client's local ids; the only
// cross-system key is the username.
package models

import "time"

type User struct {
	ID        int64
	Username  string
	Password  string
	FullName  *string
	Birthdate string
	Email     *string
	CreatedAt time.Time
}

type Vital struct {
	ID        int64
	UserID    int64
	Date      string
	Systolic  *int64
	Diastolic *int64
	Glucose   *float64
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
