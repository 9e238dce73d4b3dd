package domain

import "github.com/google/uuid"

// TimerAlert is a message attached to a timer, fired at ActivationTime (ms into the countdown).
type TimerAlert struct {
	ID             string `json:"id" bson:"_id"`
	TimerID        string `json:"timerId" bson:"timer_id"`
	ActivationTime int64  `json:"activationTime" bson:"activation_time"`
	Message        string `json:"message" bson:"message"`
	Activated      bool   `json:"activated" bson:"activated"`
}

// NewTimerAlert returns an alert that has not been activated yet.
func NewTimerAlert(timerID string, activationTime int64, message string) (TimerAlert, error) {
	if timerID == "" {
		return TimerAlert{}, NewValidationError("timerId", "cannot be empty")
	}
	if activationTime < 0 {
		return TimerAlert{}, NewValidationError("activationTime", "cannot be negative")
	}
	return TimerAlert{
		ID:             uuid.NewString(),
		TimerID:        timerID,
		ActivationTime: activationTime,
		Message:        message,
		Activated:      false,
	}, nil
}

// Activate returns a copy of a marked as activated.
func (a TimerAlert) Activate() TimerAlert {
	a.Activated = true
	return a
}

// Deactivate returns a copy of a marked as not activated.
func (a TimerAlert) Deactivate() TimerAlert {
	a.Activated = false
	return a
}

// TimerAlertPatch is a partial update of a timer alert.
type TimerAlertPatch struct {
	TimerID        Optional[string]
	ActivationTime Optional[int64]
	Message        Optional[string]
}

var timerAlertProtected = []string{"id", "activated"}

// DecodeTimerAlertPatch parses a raw JSON partial update.
func DecodeTimerAlertPatch(data []byte) (TimerAlertPatch, error) {
	var p TimerAlertPatch
	schema := patchSchema{
		entity:    "timerAlert",
		protected: timerAlertProtected,
		fields: map[string]fieldDecoder{
			"timerId":        stringField(&p.TimerID),
			"activationTime": int64Field(&p.ActivationTime),
			"message":        stringField(&p.Message),
		},
	}
	if err := schema.decode(data); err != nil {
		return TimerAlertPatch{}, err
	}
	return p, p.Validate()
}

func (p TimerAlertPatch) Validate() error {
	if err := requireNonEmpty("timerId", p.TimerID); err != nil {
		return err
	}
	if p.ActivationTime.Set && p.ActivationTime.Value < 0 {
		return NewValidationError("activationTime", "cannot be negative")
	}
	return nil
}

// Apply merges p into a.
func (a TimerAlert) Apply(p TimerAlertPatch) TimerAlert {
	a.TimerID = p.TimerID.Or(a.TimerID)
	a.ActivationTime = p.ActivationTime.Or(a.ActivationTime)
	a.Message = p.Message.Or(a.Message)
	return a
}
