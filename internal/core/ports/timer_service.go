package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// TimerService defines the timer use cases.
type TimerService interface {
	CreateTimer(ctx context.Context, userID, name string, duration, intervalDuration int64) (domain.Timer, error)
	GetTimer(ctx context.Context, id string) (domain.Timer, error)
	GetTimersByUserID(ctx context.Context, userID string) ([]domain.Timer, error)
	UpdateTimer(ctx context.Context, id string, patch domain.TimerPatch) (domain.Timer, error)
	StartTimer(ctx context.Context, id string) (domain.Timer, error)
	StopTimer(ctx context.Context, id string) (domain.Timer, error)
	DecrementTimer(ctx context.Context, id string) (domain.Timer, error)
	ResetTimer(ctx context.Context, id string) (domain.Timer, error)
	DeleteTimer(ctx context.Context, id string) error
}

// TimerAlertService defines the timer alert use cases.
type TimerAlertService interface {
	CreateTimerAlert(ctx context.Context, timerID string, activationTime int64, message string) (domain.TimerAlert, error)
	GetTimerAlert(ctx context.Context, id string) (domain.TimerAlert, error)
	GetTimerAlertsByTimerID(ctx context.Context, timerID string) ([]domain.TimerAlert, error)
	UpdateTimerAlert(ctx context.Context, id string, patch domain.TimerAlertPatch) (domain.TimerAlert, error)
	ActivateTimerAlert(ctx context.Context, id string) (domain.TimerAlert, error)
	DeactivateTimerAlert(ctx context.Context, id string) (domain.TimerAlert, error)
	DeleteTimerAlert(ctx context.Context, id string) error
}

// TimerTicker is the narrow view the tick dispatcher needs.
type TimerTicker interface {
	DecrementTimer(ctx context.Context, id string) (domain.Timer, error)
}
