package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// TimerAlertPorts are the collaborators of TimerAlertService.
type TimerAlertPorts struct {
	Alerts ports.TimerAlertRepository
	Sender ports.MessageSender
}

// TimerAlertService implements ports.TimerAlertService.
type TimerAlertService struct {
	alerts ports.TimerAlertRepository
	sender ports.MessageSender
	log    zerolog.Logger
}

func NewTimerAlertService(p TimerAlertPorts, log zerolog.Logger) (*TimerAlertService, error) {
	if err := requirePorts("timer alert", map[string]any{"Alerts": p.Alerts, "Sender": p.Sender}); err != nil {
		return nil, err
	}
	return &TimerAlertService{
		alerts: p.Alerts,
		sender: p.Sender,
		log:    log.With().Str("service", "timer_alert").Logger(),
	}, nil
}

func (s *TimerAlertService) CreateTimerAlert(ctx context.Context, timerID string, activationTime int64, message string) (domain.TimerAlert, error) {
	alert, err := domain.NewTimerAlert(timerID, activationTime, message)
	if err != nil {
		return domain.TimerAlert{}, err
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		s.log.Error().Err(err).Str("timer_id", timerID).Msg("failed to create timer alert")
		return domain.TimerAlert{}, domain.Collaborator("createTimerAlert", err)
	}
	s.log.Info().Str("alert_id", alert.ID).Str("timer_id", timerID).Msg("timer alert created")
	return alert, nil
}

func (s *TimerAlertService) GetTimerAlert(ctx context.Context, id string) (domain.TimerAlert, error) {
	if err := requireID("id", id); err != nil {
		return domain.TimerAlert{}, err
	}
	alert, err := s.alerts.FindByID(ctx, id)
	if err != nil {
		return domain.TimerAlert{}, domain.Collaborator("findTimerAlertById", err)
	}
	return alert, nil
}

// GetTimerAlertsByTimerID lists the alerts of a timer. There is no existence
// check on the timer: an unknown timer simply has no alerts.
func (s *TimerAlertService) GetTimerAlertsByTimerID(ctx context.Context, timerID string) ([]domain.TimerAlert, error) {
	if err := requireID("timerId", timerID); err != nil {
		return nil, err
	}
	alerts, err := s.alerts.FindByTimerID(ctx, timerID)
	if err != nil {
		return nil, domain.Collaborator("findTimerAlertsByTimerId", err)
	}
	return nonNil(alerts), nil
}

func (s *TimerAlertService) UpdateTimerAlert(ctx context.Context, id string, patch domain.TimerAlertPatch) (domain.TimerAlert, error) {
	if err := patch.Validate(); err != nil {
		return domain.TimerAlert{}, err
	}
	return s.save(ctx, id, "update", func(a domain.TimerAlert) domain.TimerAlert { return a.Apply(patch) })
}

// ActivateTimerAlert marks the alert activated, persists it and then sends its
// message. A send failure fails the call even though the alert is already saved;
// callers own redelivery.
func (s *TimerAlertService) ActivateTimerAlert(ctx context.Context, id string) (domain.TimerAlert, error) {
	alert, err := s.save(ctx, id, "activate", domain.TimerAlert.Activate)
	if err != nil {
		return domain.TimerAlert{}, err
	}
	if err := s.sender.SendMessage(ctx, alert.Message); err != nil {
		s.log.Error().Err(err).Str("alert_id", id).Msg("failed to send alert message")
		return domain.TimerAlert{}, domain.Collaborator("sendMessage", err)
	}
	return alert, nil
}

func (s *TimerAlertService) DeactivateTimerAlert(ctx context.Context, id string) (domain.TimerAlert, error) {
	return s.save(ctx, id, "deactivate", domain.TimerAlert.Deactivate)
}

func (s *TimerAlertService) DeleteTimerAlert(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.alerts.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("alert_id", id).Msg("failed to delete timer alert")
		return domain.Collaborator("deleteTimerAlert", err)
	}
	s.log.Info().Str("alert_id", id).Msg("timer alert deleted")
	return nil
}

func (s *TimerAlertService) save(ctx context.Context, id, op string, fn func(domain.TimerAlert) domain.TimerAlert) (domain.TimerAlert, error) {
	alert, err := fetchMergeSave(ctx, s.alerts, "TimerAlert", id, pure(fn))
	if err != nil {
		failure(s.log, err).Str("alert_id", id).Str("op", op).Msg("timer alert operation failed")
		return domain.TimerAlert{}, err
	}
	s.log.Info().Str("alert_id", id).Str("op", op).Bool("activated", alert.Activated).Msg("timer alert saved")
	return alert, nil
}
