package ports

import (
	"context"
	"errors"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the password
// is wrong. Any other Compare error means the check itself failed.
var ErrPasswordMismatch = errors.New("password mismatch")

// UserExistence answers whether a user id refers to a known user.
type UserExistence interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// UniquenessPolicy decides whether a user name or email is still free.
type UniquenessPolicy interface {
	IsUserNameUnique(ctx context.Context, userName string) (bool, error)
	IsEmailUnique(ctx context.Context, email string) (bool, error)
}

// PasswordHasher turns cleartext passwords into hashes and checks them.
// Compare returns an error matching ErrPasswordMismatch when password does not
// match hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// FinishObserver is told when a decrement brings a running countdown to zero.
type FinishObserver interface {
	TimerFinished(ctx context.Context, timer domain.Timer)
}

// MessageSender delivers an activated alert's message.
type MessageSender interface {
	SendMessage(ctx context.Context, message string) error
}

// UserExistsFunc adapts a plain function to UserExistence.
type UserExistsFunc func(ctx context.Context, userID string) (bool, error)

func (f UserExistsFunc) UserExists(ctx context.Context, userID string) (bool, error) {
	return f(ctx, userID)
}

// MessageSenderFunc adapts a plain function to MessageSender.
type MessageSenderFunc func(ctx context.Context, message string) error

func (f MessageSenderFunc) SendMessage(ctx context.Context, message string) error {
	return f(ctx, message)
}

// InventoryRegistrarFunc adapts a plain function to InventoryRegistrar.
type InventoryRegistrarFunc func(ctx context.Context, item domain.InventoryItem) error

func (f InventoryRegistrarFunc) AddToInventory(ctx context.Context, item domain.InventoryItem) error {
	return f(ctx, item)
}
