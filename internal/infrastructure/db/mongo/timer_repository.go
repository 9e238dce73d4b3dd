package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// TimerRepository implements ports.TimerRepository.
type TimerRepository struct {
	c collection[domain.Timer]
}

func NewTimerRepository(db *mongo.Database) *TimerRepository {
	return &TimerRepository{c: newCollection[domain.Timer](db, collectionTimers, "timer")}
}

func (r *TimerRepository) Create(ctx context.Context, t domain.Timer) error {
	return r.c.insert(ctx, t)
}

func (r *TimerRepository) FindByID(ctx context.Context, id string) (domain.Timer, error) {
	return r.c.findByID(ctx, id)
}

func (r *TimerRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Timer, error) {
	return r.c.findMany(ctx, bson.M{"user_id": userID})
}

func (r *TimerRepository) Save(ctx context.Context, t domain.Timer) error {
	return r.c.replace(ctx, t.ID, t)
}

func (r *TimerRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// TimerAlertRepository implements ports.TimerAlertRepository.
type TimerAlertRepository struct {
	c collection[domain.TimerAlert]
}

func NewTimerAlertRepository(db *mongo.Database) *TimerAlertRepository {
	return &TimerAlertRepository{c: newCollection[domain.TimerAlert](db, collectionTimerAlerts, "timer alert")}
}

func (r *TimerAlertRepository) Create(ctx context.Context, a domain.TimerAlert) error {
	return r.c.insert(ctx, a)
}

func (r *TimerAlertRepository) FindByID(ctx context.Context, id string) (domain.TimerAlert, error) {
	return r.c.findByID(ctx, id)
}

func (r *TimerAlertRepository) FindByTimerID(ctx context.Context, timerID string) ([]domain.TimerAlert, error) {
	return r.c.findMany(ctx, bson.M{"timer_id": timerID})
}

func (r *TimerAlertRepository) Save(ctx context.Context, a domain.TimerAlert) error {
	return r.c.replace(ctx, a.ID, a)
}

func (r *TimerAlertRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
