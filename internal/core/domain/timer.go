package domain

import (
	"github.com/google/uuid"
)

// Timer is a countdown owned by a user. Durations are in milliseconds.
// The countdown only advances when Decrement is called explicitly.
type Timer struct {
	ID                string `json:"id" bson:"_id"`
	UserID            string `json:"userId" bson:"user_id"`
	Name              string `json:"name" bson:"name"`
	Duration          int64  `json:"duration" bson:"duration"`
	RemainingDuration int64  `json:"remainingDuration" bson:"remaining_duration"`
	IntervalDuration  int64  `json:"intervalDuration" bson:"interval_duration"`
	IsRunning         bool   `json:"isRunning" bson:"is_running"`
}

// NewTimer returns a stopped timer with its full duration remaining.
func NewTimer(userID, name string, duration, intervalDuration int64) (Timer, error) {
	if userID == "" {
		return Timer{}, NewValidationError("userId", "cannot be empty")
	}
	if name == "" {
		return Timer{}, NewValidationError("name", "cannot be empty")
	}
	if err := validateDurations(Some(duration), Some(intervalDuration)); err != nil {
		return Timer{}, err
	}

	return Timer{
		ID:                uuid.NewString(),
		UserID:            userID,
		Name:              name,
		Duration:          duration,
		RemainingDuration: duration,
		IntervalDuration:  intervalDuration,
		IsRunning:         false,
	}, nil
}

func validateDurations(duration, interval Optional[int64]) error {
	if duration.Set && duration.Value < 0 {
		return NewValidationError("duration", "cannot be negative")
	}
	if interval.Set && interval.Value <= 0 {
		return NewValidationError("intervalDuration", "must be positive")
	}
	return nil
}

// Start returns a copy of t that is running.
func (t Timer) Start() Timer {
	t.IsRunning = true
	return t
}

// Stop returns a copy of t that is stopped.
func (t Timer) Stop() Timer {
	t.IsRunning = false
	return t
}

// Decrement takes one interval off the remaining duration. Once nothing is
// left the timer is clamped at zero and stopped.
func (t Timer) Decrement() Timer {
	t.RemainingDuration -= t.IntervalDuration
	if t.RemainingDuration <= 0 {
		t.RemainingDuration = 0
		t.IsRunning = false
	}
	return t
}

// Reset restores the full duration. IsRunning is left as it was.
func (t Timer) Reset() Timer {
	t.RemainingDuration = t.Duration
	return t
}

// Finished reports whether the countdown has reached zero.
func (t Timer) Finished() bool {
	return t.RemainingDuration == 0
}

// TimerPatch is a partial update of the externally settable timer fields.
type TimerPatch struct {
	Name             Optional[string]
	Duration         Optional[int64]
	IntervalDuration Optional[int64]
}

var timerProtected = []string{"id", "remainingDuration", "isRunning", "userId"}

// DecodeTimerPatch parses a raw JSON partial update.
func DecodeTimerPatch(data []byte) (TimerPatch, error) {
	var p TimerPatch
	schema := patchSchema{
		entity:    "timer",
		protected: timerProtected,
		fields: map[string]fieldDecoder{
			"name":             stringField(&p.Name),
			"duration":         int64Field(&p.Duration),
			"intervalDuration": int64Field(&p.IntervalDuration),
		},
	}
	if err := schema.decode(data); err != nil {
		return TimerPatch{}, err
	}
	return p, p.Validate()
}

// Validate checks the domain rules of the fields that are set.
func (p TimerPatch) Validate() error {
	if err := requireNonEmpty("name", p.Name); err != nil {
		return err
	}
	return validateDurations(p.Duration, p.IntervalDuration)
}

// Apply merges p into t. A duration shorter than what remains clamps the remaining duration.
func (t Timer) Apply(p TimerPatch) Timer {
	t.Name = p.Name.Or(t.Name)
	t.Duration = p.Duration.Or(t.Duration)
	t.IntervalDuration = p.IntervalDuration.Or(t.IntervalDuration)
	if t.Duration < t.RemainingDuration {
		t.RemainingDuration = t.Duration
	}
	return t
}
