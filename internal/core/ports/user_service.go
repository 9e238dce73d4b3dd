package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// UserService defines the user use cases.
type UserService interface {
	CreateUser(ctx context.Context, userName, password, email string) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) (domain.User, error)
	AuthenticateUser(ctx context.Context, userName, password string) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
