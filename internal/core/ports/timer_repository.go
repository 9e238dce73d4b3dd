package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// TimerRepository persists timers. Save replaces the stored timer with the same id;
// concurrent saves of one timer are last-writer-wins.
type TimerRepository interface {
	Create(ctx context.Context, t domain.Timer) error
	FindByID(ctx context.Context, id string) (domain.Timer, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Timer, error)
	Save(ctx context.Context, t domain.Timer) error
	Delete(ctx context.Context, id string) error
}

// TimerAlertRepository persists timer alerts.
type TimerAlertRepository interface {
	Create(ctx context.Context, a domain.TimerAlert) error
	FindByID(ctx context.Context, id string) (domain.TimerAlert, error)
	FindByTimerID(ctx context.Context, timerID string) ([]domain.TimerAlert, error)
	Save(ctx context.Context, a domain.TimerAlert) error
	Delete(ctx context.Context, id string) error
}
