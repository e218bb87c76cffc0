// Package models contains database model definitions.
package models

import (
	"time"
)

// Mode represents the handling classification for a phone number.
type Mode string

const (
	// ModeCall routes the number to a regular voice call flow.
	ModeCall Mode = "CALL"
	// ModeOTP routes the number to a one-time-password flow.
	ModeOTP Mode = "OTP"

	// ModeUnknown is the lookup sentinel for numbers without a record.
	// It is never persisted.
	ModeUnknown = "UNKNOWN"
)

// Valid reports whether m is one of the two persistable mode values.
func (m Mode) Valid() bool {
	return m == ModeCall || m == ModeOTP
}

// PhoneNumber maps a phone number to its handling mode.
// Number is stored in normalized (trimmed) form and is immutable
// after creation; only Mode may change.
type PhoneNumber struct {
	// ID is the unique identifier for the record, assigned by the store.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Number is the normalized phone number.
	Number string `gorm:"unique;size:64;not null" json:"number"`
	// Mode is the handling mode, CALL or OTP.
	Mode Mode `gorm:"type:varchar(10);not null;default:'CALL'" json:"mode"`
	// CreatedAt is the timestamp when the record was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the record was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updatedAt"`
}
