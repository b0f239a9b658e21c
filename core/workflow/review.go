package workflow

import (
	"errors"
	"fmt"
)

// State is a review state.
type State string

const (
	Unreviewed State = "unreviewed"
	Reviewed   State = "reviewed"
	Exported   State = "exported"
)

// ErrInvalidTransition is returned for a transition the current state forbids.
var ErrInvalidTransition = errors.New("invalid review transition")

// Review tracks one report's review state.
type Review struct {
	state State
}

// NewReview returns a review in the Unreviewed state.
func NewReview() *Review {
	return &Review{state: Unreviewed}
}

// State returns the current state.
func (r *Review) State() State {
	return r.state
}

// Confirm marks the report as reviewed.
func (r *Review) Confirm() error {
	if r.state != Unreviewed {
		return fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, r.state)
	}
	r.state = Reviewed
	return nil
}

// Edit records an overlay edit. A reviewed report needs confirming again.
func (r *Review) Edit() error {
	switch r.state {
	case Unreviewed:
		return nil
	case Reviewed:
		r.state = Unreviewed
		return nil
	default:
		return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, r.state)
	}
}

// Export runs fn when the report is reviewed and moves to Exported on success.
// A failed export leaves the review in Reviewed so it can be retried.
func (r *Review) Export(fn func() error) error {
	if r.state != Reviewed {
		return fmt.Errorf("%w: export from %s", ErrInvalidTransition, r.state)
	}
	if err := fn(); err != nil {
		return err
	}
	r.state = Exported
	return nil
}
