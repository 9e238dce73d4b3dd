package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// UserPorts are the collaborators of UserService.
type UserPorts struct {
	Users      ports.UserRepository
	Uniqueness ports.UniquenessPolicy
	Hasher     ports.PasswordHasher
}

// UserService implements registration, authentication and profile updates.
type UserService struct {
	users      ports.UserRepository
	uniqueness ports.UniquenessPolicy
	hasher     ports.PasswordHasher
	log        zerolog.Logger
}

func NewUserService(p UserPorts, log zerolog.Logger) (*UserService, error) {
	err := requirePorts("user", map[string]any{
		"Users":      p.Users,
		"Uniqueness": p.Uniqueness,
		"Hasher":     p.Hasher,
	})
	if err != nil {
		return nil, err
	}
	return &UserService{
		users:      p.Users,
		uniqueness: p.Uniqueness,
		hasher:     p.Hasher,
		log:        log.With().Str("service", "user").Logger(),
	}, nil
}

// CreateUser registers a user. Uniqueness is checked before the password is
// hashed or anything is persisted.
func (s *UserService) CreateUser(ctx context.Context, userName, password, email string) (domain.User, error) {
	if userName == "" {
		return domain.User{}, domain.NewValidationError("userName", "cannot be empty")
	}
	if password == "" {
		return domain.User{}, domain.NewValidationError("password", "cannot be empty")
	}
	if email == "" {
		return domain.User{}, domain.NewValidationError("email", "cannot be empty")
	}

	if err := s.ensureUnique(ctx, domain.Some(userName), domain.Some(email)); err != nil {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.Collaborator("hashPassword", err)
	}

	user, err := domain.NewUser(userName, hash, email)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_name", userName).Msg("failed to create user")
		return domain.User{}, domain.Collaborator("createUser", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("user_name", userName).Msg("user created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	if err := requireID("id", id); err != nil {
		return domain.User{}, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, domain.Collaborator("findUserById", err)
	}
	return user, nil
}

// UpdateUser applies a partial update. A changed user name or email must pass
// the uniqueness policy again.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	if err := patch.Validate(); err != nil {
		return domain.User{}, err
	}

	user, err := fetchMergeSave(ctx, s.users, "User", id, func(current domain.User) (domain.User, error) {
		userName, email := patch.UserName, patch.Email
		if userName.Value == current.UserName {
			userName.Set = false
		}
		if email.Value == current.Email {
			email.Set = false
		}
		if err := s.ensureUnique(ctx, userName, email); err != nil {
			return domain.User{}, err
		}
		return current.Apply(patch), nil
	})
	if err != nil {
		failure(s.log, err).Str("user_id", id).Msg("user update failed")
		return domain.User{}, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

// ChangePassword replaces the password hash after checking the current password.
func (s *UserService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) (domain.User, error) {
	if newPassword == "" {
		return domain.User{}, domain.NewValidationError("password", "cannot be empty")
	}

	user, err := fetchMergeSave(ctx, s.users, "User", id, func(current domain.User) (domain.User, error) {
		if err := s.checkPassword(current.HashedPassword, currentPassword); err != nil {
			return domain.User{}, err
		}
		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return domain.User{}, domain.Collaborator("hashPassword", err)
		}
		return current.WithPasswordHash(hash), nil
	})
	if err != nil {
		failure(s.log, err).Str("user_id", id).Msg("password change failed")
		return domain.User{}, err
	}

	s.log.Info().Str("user_id", id).Msg("password changed")
	return user, nil
}

// AuthenticateUser returns the user when password matches the stored hash.
// An unknown user name and a wrong password both yield domain.ErrAuthentication.
func (s *UserService) AuthenticateUser(ctx context.Context, userName, password string) (domain.User, error) {
	if userName == "" || password == "" {
		return domain.User{}, domain.ErrAuthentication
	}

	user, err := s.users.FindByUserName(ctx, userName)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrAuthentication
	}
	if err != nil {
		return domain.User{}, domain.Collaborator("findUserByUserName", err)
	}

	if err := s.checkPassword(user.HashedPassword, password); err != nil {
		if errors.Is(err, domain.ErrAuthentication) {
			s.log.Debug().Str("user_name", userName).Msg("password mismatch")
		}
		return domain.User{}, err
	}
	return user, nil
}

// checkPassword maps a mismatch to ErrAuthentication and any other hasher
// failure to a collaborator error.
func (s *UserService) checkPassword(hash, password string) error {
	err := s.hasher.Compare(hash, password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ports.ErrPasswordMismatch):
		return domain.ErrAuthentication
	default:
		return domain.Collaborator("compareHash", err)
	}
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return domain.Collaborator("deleteUser", err)
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) ensureUnique(ctx context.Context, userName, email domain.Optional[string]) error {
	if userName.Set {
		ok, err := s.uniqueness.IsUserNameUnique(ctx, userName.Value)
		if err != nil {
			return domain.Collaborator("isUserNameUnique", err)
		}
		if !ok {
			return &domain.UniquenessError{Field: "userName", Value: userName.Value}
		}
	}
	if email.Set {
		ok, err := s.uniqueness.IsEmailUnique(ctx, email.Value)
		if err != nil {
			return domain.Collaborator("isEmailUnique", err)
		}
		if !ok {
			return &domain.UniquenessError{Field: "email", Value: email.Value}
		}
	}
	return nil
}
