package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrParticipantNotFound = errors.New("participant not found")

	// Attendance log errors
	ErrLogRowNotFound = errors.New("attendance log row not found")
	ErrLogUnavailable = errors.New("attendance log unavailable")
)
