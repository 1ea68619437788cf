package fsm

import (
	"fmt"
)

// Status constants used by the property lifecycle state machine.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var transitions = map[string]map[string]struct{}{
	StatusDraft:     {StatusPublished: {}, StatusArchived: {}},
	StatusPublished: {StatusDraft: {}, StatusArchived: {}},
	StatusArchived:  {},
}

// IsValidStatus reports whether s is one of the three lifecycle statuses.
func IsValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition returns whether a property can move from the current status
// to the target status. A self-transition is always allowed, which is what
// makes archiving idempotent; there is still no way out of archived.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// TransitionError reports a rejected status change together with both the
// current and the attempted state.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// Validate returns a *TransitionError when the requested change is not
// permitted, including unknown target statuses.
func Validate(from, to string) error {
	if !IsValidStatus(to) || !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
