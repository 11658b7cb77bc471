// Package types contains common types used across the application
package types

// Stage classifies a match within the competition day.
type Stage string

// Match stages. The test stage is reserved for the single synthetic
// match created at import time.
const (
	StageTest     Stage = "test"
	StagePractice Stage = "practice"
	StageRanking  Stage = "ranking"
)

// Status tracks the lifecycle of a match or judging session. Imports
// always create entities as StatusNotStarted; later transitions are
// owned by the live event logic, not the importer.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Presence records whether a team showed up to its match slot.
type Presence string

const (
	PresenceNoShow  Presence = "no-show"
	PresencePresent Presence = "present"
)

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageTest, StagePractice, StageRanking:
		return true
	}
	return false
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
