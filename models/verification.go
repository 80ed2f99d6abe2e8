package models

import "fmt"

// VerificationLevel is the lifecycle an action moves through after it is
// logged. Records always start as pending; a privileged verifier moves them
// forward. Nothing ever moves back to pending.
type VerificationLevel string

const (
	VerificationPending  VerificationLevel = "pending"
	VerificationVerified VerificationLevel = "verified"
	VerificationRejected VerificationLevel = "rejected"
	VerificationChampion VerificationLevel = "champion"
)

func (v VerificationLevel) Valid() bool {
	switch v {
	case VerificationPending, VerificationVerified, VerificationRejected, VerificationChampion:
		return true
	}
	return false
}

// Counted reports whether the level contributes to a user's verified points.
func (v VerificationLevel) Counted() bool {
	return v == VerificationVerified || v == VerificationChampion
}

// CanTransitionTo reports whether the edge v -> next is legal.
// pending -> verified|rejected, verified -> champion; rejected and champion
// are terminal.
func (v VerificationLevel) CanTransitionTo(next VerificationLevel) bool {
	switch v {
	case VerificationPending:
		return next == VerificationVerified || next == VerificationRejected
	case VerificationVerified:
		return next == VerificationChampion
	}
	return false
}

// Transition validates the edge and returns the new level.
func Transition(current, next VerificationLevel) (VerificationLevel, error) {
	if !current.Valid() {
		return current, fmt.Errorf("unknown verification level %q", current)
	}
	if !next.Valid() {
		return current, fmt.Errorf("unknown verification level %q", next)
	}
	if !current.CanTransitionTo(next) {
		return current, fmt.Errorf("invalid verification transition %s -> %s", current, next)
	}
	return next, nil
}
