package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// SettingPorts are the collaborators of SettingService.
type SettingPorts struct {
	Settings ports.SettingRepository
	Users    ports.UserExistence
}

type SettingService struct {
	settings ports.SettingRepository
	users    ports.UserExistence
	log      zerolog.Logger
}

func NewSettingService(p SettingPorts, log zerolog.Logger) (*SettingService, error) {
	if err := requirePorts("setting", map[string]any{"Settings": p.Settings, "Users": p.Users}); err != nil {
		return nil, err
	}
	return &SettingService{
		settings: p.Settings,
		users:    p.Users,
		log:      log.With().Str("service", "setting").Logger(),
	}, nil
}

func (s *SettingService) CreateSetting(ctx context.Context, userID, name string, value any) (domain.Setting, error) {
	setting, err := domain.NewSetting(userID, name, value)
	if err != nil {
		return domain.Setting{}, err
	}
	if err := s.settings.Create(ctx, setting); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Str("name", name).Msg("failed to create setting")
		return domain.Setting{}, domain.Collaborator("createSetting", err)
	}
	s.log.Info().Str("setting_id", setting.ID).Str("name", name).Msg("setting created")
	return setting, nil
}

func (s *SettingService) GetSetting(ctx context.Context, id string) (domain.Setting, error) {
	if err := requireID("id", id); err != nil {
		return domain.Setting{}, err
	}
	setting, err := s.settings.FindByID(ctx, id)
	if err != nil {
		return domain.Setting{}, domain.Collaborator("findSettingById", err)
	}
	return setting, nil
}

func (s *SettingService) GetSettingsByUserID(ctx context.Context, userID string) ([]domain.Setting, error) {
	return listOwned(ctx, s.users, userID, "findSettingsByUserId", s.settings.FindByUserID)
}

// UpdateSetting applies a partial update. A new value must keep the JSON kind
// of the stored one.
func (s *SettingService) UpdateSetting(ctx context.Context, id string, patch domain.SettingPatch) (domain.Setting, error) {
	if err := patch.Validate(); err != nil {
		return domain.Setting{}, err
	}
	setting, err := fetchMergeSave(ctx, s.settings, "Setting", id, func(current domain.Setting) (domain.Setting, error) {
		if err := patch.CheckAgainst(current); err != nil {
			return domain.Setting{}, err
		}
		return current.Apply(patch), nil
	})
	if err != nil {
		failure(s.log, err).Str("setting_id", id).Msg("setting update failed")
		return domain.Setting{}, err
	}
	s.log.Info().Str("setting_id", id).Msg("setting updated")
	return setting, nil
}

func (s *SettingService) DeleteSetting(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.settings.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("setting_id", id).Msg("failed to delete setting")
		return domain.Collaborator("deleteSetting", err)
	}
	s.log.Info().Str("setting_id", id).Msg("setting deleted")
	return nil
}
