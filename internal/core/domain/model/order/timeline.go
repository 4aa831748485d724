package order

import (
	"time"

	"restaurant/internal/pkg/errs"
)

// Outcome classifies a timeline entry for display purposes.
type Outcome string

const (
	// OutcomeSuccess marks an entry recording a step that moved the order
	// forward (creation, dispatch, payment).
	OutcomeSuccess Outcome = "success"

	// OutcomeError marks an entry recording a disruptive step, such as
	// cancellation.
	OutcomeError Outcome = "error"

	// OutcomeDefault marks a neutral informational entry.
	OutcomeDefault Outcome = "default"
)

// Validate checks that the Outcome is one of the recognized values.
func (o Outcome) Validate() error {
	switch o {
	case OutcomeSuccess, OutcomeError, OutcomeDefault:
		return nil
	default:
		return errs.NewValueIsInvalidError("outcome")
	}
}

// String returns the wire representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// TimelineEntry is one record in an order's append-only audit trail.
// Entries are written by the order aggregate as lifecycle steps happen and
// are never modified or removed afterwards.
type TimelineEntry struct {
	title       string
	time        time.Time
	description string
	outcome     Outcome
}

// NewTimelineEntry creates a validated timeline entry.
// The title is required; an empty outcome defaults to OutcomeDefault.
func NewTimelineEntry(title string, at time.Time, description string, outcome Outcome) (TimelineEntry, error) {
	if title == "" {
		return TimelineEntry{}, errs.NewValueIsRequiredError("title")
	}
	if outcome == "" {
		outcome = OutcomeDefault
	}
	if err := outcome.Validate(); err != nil {
		return TimelineEntry{}, err
	}

	return TimelineEntry{
		title:       title,
		time:        at,
		description: description,
		outcome:     outcome,
	}, nil
}

// Title returns the short label of the recorded step.
func (e TimelineEntry) Title() string {
	return e.title
}

// Time returns when the step happened.
func (e TimelineEntry) Time() time.Time {
	return e.time
}

// Description returns the human-readable detail line.
func (e TimelineEntry) Description() string {
	return e.description
}

// Outcome returns the display classification of the entry.
func (e TimelineEntry) Outcome() Outcome {
	return e.outcome
}
