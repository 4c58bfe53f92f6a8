package model

import "time"

// LogAction is the action recorded in an attendance log row
type LogAction string

const (
	ActionMarked  LogAction = "MARKED"
	ActionRemoved LogAction = "REMOVED"
)

// LogEntry is one row of the external attendance log
type LogEntry struct {
	Timestamp time.Time
	Identity  Identity
	Action    LogAction
}
