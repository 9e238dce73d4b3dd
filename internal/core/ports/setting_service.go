package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// SettingService defines the setting use cases.
type SettingService interface {
	CreateSetting(ctx context.Context, userID, name string, value any) (domain.Setting, error)
	GetSetting(ctx context.Context, id string) (domain.Setting, error)
	GetSettingsByUserID(ctx context.Context, userID string) ([]domain.Setting, error)
	UpdateSetting(ctx context.Context, id string, patch domain.SettingPatch) (domain.Setting, error)
	DeleteSetting(ctx context.Context, id string) error
}
