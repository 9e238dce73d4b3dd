package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, u domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	// FindByUserName returns domain.ErrNotFound when no user has that name.
	FindByUserName(ctx context.Context, userName string) (domain.User, error)
	Save(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id string) error
}
