package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// SettingRepository persists user settings.
type SettingRepository interface {
	Create(ctx context.Context, s domain.Setting) error
	FindByID(ctx context.Context, id string) (domain.Setting, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Setting, error)
	Save(ctx context.Context, s domain.Setting) error
	Delete(ctx context.Context, id string) error
}
