package reschedule

import (
	"time"

	"homestead-calendar/internal/model"
)

// State is the phase of one drag gesture.
type State string

const (
	StateIdle           State = "idle"
	StateDragging       State = "dragging"
	StateDroppedValid   State = "dropped_valid"
	StateDroppedInvalid State = "dropped_invalid"
	StateSubmitting     State = "submitting"
	StateCommitted      State = "committed"
	StateFailed         State = "failed"
	StateRejected       State = "rejected"
)

// Target is where an occurrence was dropped. A nil Hour means a day cell
// (month view); otherwise an hour slot of a week or day view.
type Target struct {
	Date model.Date
	Hour *int
}

// Result describes how a drop ended.
type Result struct {
	TaskID         string
	State          State
	PreviousAnchor time.Time
	Anchor         time.Time // zero unless the update was submitted
}
