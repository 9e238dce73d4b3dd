package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// TimerPorts are the collaborators of TimerService.
type TimerPorts struct {
	Timers ports.TimerRepository
	Users  ports.UserExistence
	// Finished is optional.
	Finished ports.FinishObserver
}

// TimerService implements ports.TimerService.
type TimerService struct {
	timers   ports.TimerRepository
	users    ports.UserExistence
	finished ports.FinishObserver
	log      zerolog.Logger
}

func NewTimerService(p TimerPorts, log zerolog.Logger) (*TimerService, error) {
	if err := requirePorts("timer", map[string]any{"Timers": p.Timers, "Users": p.Users}); err != nil {
		return nil, err
	}
	return &TimerService{
		timers:   p.Timers,
		users:    p.Users,
		finished: p.Finished,
		log:      log.With().Str("service", "timer").Logger(),
	}, nil
}

// CreateTimer builds a stopped timer and persists it.
func (s *TimerService) CreateTimer(ctx context.Context, userID, name string, duration, intervalDuration int64) (domain.Timer, error) {
	timer, err := domain.NewTimer(userID, name, duration, intervalDuration)
	if err != nil {
		return domain.Timer{}, err
	}

	if err := s.timers.Create(ctx, timer); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create timer")
		return domain.Timer{}, domain.Collaborator("createTimer", err)
	}

	s.log.Info().Str("timer_id", timer.ID).Str("user_id", userID).Msg("timer created")
	return timer, nil
}

func (s *TimerService) GetTimer(ctx context.Context, id string) (domain.Timer, error) {
	if err := requireID("id", id); err != nil {
		return domain.Timer{}, err
	}
	timer, err := s.timers.FindByID(ctx, id)
	if err != nil {
		return domain.Timer{}, domain.Collaborator("findTimerById", err)
	}
	return timer, nil
}

// GetTimersByUserID lists a user's timers. Unknown users get an empty list.
func (s *TimerService) GetTimersByUserID(ctx context.Context, userID string) ([]domain.Timer, error) {
	return listOwned(ctx, s.users, userID, "findTimersByUserId", s.timers.FindByUserID)
}

// UpdateTimer applies a partial update. Shrinking the duration below what
// remains clamps the remaining duration.
func (s *TimerService) UpdateTimer(ctx context.Context, id string, patch domain.TimerPatch) (domain.Timer, error) {
	if err := patch.Validate(); err != nil {
		return domain.Timer{}, err
	}
	return s.save(ctx, id, "update", func(t domain.Timer) domain.Timer { return t.Apply(patch) })
}

func (s *TimerService) StartTimer(ctx context.Context, id string) (domain.Timer, error) {
	return s.save(ctx, id, "start", domain.Timer.Start)
}

func (s *TimerService) StopTimer(ctx context.Context, id string) (domain.Timer, error) {
	return s.save(ctx, id, "stop", domain.Timer.Stop)
}

// DecrementTimer advances the countdown by one interval. Only the decrement
// that reaches zero counts as finishing the timer.
func (s *TimerService) DecrementTimer(ctx context.Context, id string) (domain.Timer, error) {
	var finished bool
	timer, err := s.save(ctx, id, "decrement", func(current domain.Timer) domain.Timer {
		next := current.Decrement()
		finished = !current.Finished() && next.Finished()
		return next
	})
	if err != nil || !finished {
		return timer, err
	}

	s.log.Info().Str("timer_id", id).Msg("timer finished")
	if s.finished != nil {
		s.finished.TimerFinished(ctx, timer)
	}
	return timer, nil
}

// ResetTimer restores the full duration without touching IsRunning.
func (s *TimerService) ResetTimer(ctx context.Context, id string) (domain.Timer, error) {
	return s.save(ctx, id, "reset", domain.Timer.Reset)
}

func (s *TimerService) DeleteTimer(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.timers.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("timer_id", id).Msg("failed to delete timer")
		return domain.Collaborator("deleteTimer", err)
	}
	s.log.Info().Str("timer_id", id).Msg("timer deleted")
	return nil
}

func (s *TimerService) save(ctx context.Context, id, op string, fn func(domain.Timer) domain.Timer) (domain.Timer, error) {
	timer, err := fetchMergeSave(ctx, s.timers, "Timer", id, pure(fn))
	if err != nil {
		failure(s.log, err).Str("timer_id", id).Str("op", op).Msg("timer operation failed")
		return domain.Timer{}, err
	}
	s.log.Info().
		Str("timer_id", id).
		Str("op", op).
		Int64("remaining_duration", timer.RemainingDuration).
		Bool("is_running", timer.IsRunning).
		Msg("timer saved")
	return timer, nil
}
