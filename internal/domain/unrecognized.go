package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnrecognizedWord is an extraction failure that requires a human decision.
// Only the messy-notes extraction path creates these; the user later resolves
// the word into a manual card entry or dismisses it.
type UnrecognizedWord struct {
	ID            uuid.UUID
	Text          string
	SourceContext string
	AINote        string
	Status        UnrecognizedStatus
	CreatedAt     time.Time
}

// UnrecognizedStatus is the lifecycle state of an unrecognized word.
// PENDING is the only non-terminal state.
type UnrecognizedStatus string

const (
	UnrecognizedPending   UnrecognizedStatus = "PENDING"
	UnrecognizedResolved  UnrecognizedStatus = "RESOLVED"
	UnrecognizedDismissed UnrecognizedStatus = "DISMISSED"
)

func (s UnrecognizedStatus) String() string { return string(s) }

func (s UnrecognizedStatus) IsValid() bool {
	switch s {
	case UnrecognizedPending, UnrecognizedResolved, UnrecognizedDismissed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s UnrecognizedStatus) IsTerminal() bool {
	return s == UnrecognizedResolved || s == UnrecognizedDismissed
}
