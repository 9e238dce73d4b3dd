package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// ErrMissingPort is returned by service constructors when a port is nil.
var ErrMissingPort = errors.New("missing port")

// requirePorts checks that every named port was supplied.
func requirePorts(service string, named map[string]any) error {
	var missing []string
	for name, p := range named {
		if p == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%s service: %w: %v", service, ErrMissingPort, missing)
}

func requireID(field, id string) error {
	if id == "" {
		return domain.NewValidationError(field, "cannot be empty")
	}
	return nil
}

// nonNil turns a nil slice from a repository into an empty one.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type store[T any] interface {
	FindByID(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, v T) error
}

// fetchMergeSave runs the shared update sequence: fetch the current snapshot,
// derive the next one with merge, persist it and return it. Nothing is saved
// when merge fails.
func fetchMergeSave[T any](
	ctx context.Context,
	repo store[T],
	entity, id string,
	merge func(current T) (T, error),
) (T, error) {
	var zero T
	if err := requireID("id", id); err != nil {
		return zero, err
	}

	current, err := repo.FindByID(ctx, id)
	if err != nil {
		return zero, domain.Collaborator("find"+entity+"ById", err)
	}

	next, err := merge(current)
	if err != nil {
		return zero, err
	}

	if err := repo.Save(ctx, next); err != nil {
		return zero, domain.Collaborator("save"+entity, err)
	}
	return next, nil
}

// pure lifts a merge that cannot fail.
func pure[T any](fn func(T) T) func(T) (T, error) {
	return func(v T) (T, error) { return fn(v), nil }
}

// listOwned returns the entities of a user, or an empty list without querying
// when the user does not exist.
func listOwned[T any](
	ctx context.Context,
	users ports.UserExistence,
	userID, op string,
	find func(ctx context.Context, userID string) ([]T, error),
) ([]T, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}

	exists, err := users.UserExists(ctx, userID)
	if err != nil {
		return nil, domain.Collaborator("userExists", err)
	}
	if !exists {
		return []T{}, nil
	}

	items, err := find(ctx, userID)
	if err != nil {
		return nil, domain.Collaborator(op, err)
	}
	return nonNil(items), nil
}

// failure picks the log level for a failed use case: collaborator failures are
// errors, rejected input is only worth a debug line.
func failure(log zerolog.Logger, err error) *zerolog.Event {
	if errors.Is(err, domain.ErrCollaborator) {
		return log.Error().Err(err)
	}
	return log.Debug().Err(err)
}
