package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// SettingRepository implements ports.SettingRepository. Values are stored as
// native BSON so their JSON kind survives a round trip.
type SettingRepository struct {
	c collection[domain.Setting]
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{c: newCollection[domain.Setting](db, collectionSettings, "setting")}
}

func (r *SettingRepository) Create(ctx context.Context, s domain.Setting) error {
	return r.c.insert(ctx, s)
}

func (r *SettingRepository) FindByID(ctx context.Context, id string) (domain.Setting, error) {
	return r.c.findByID(ctx, id)
}

func (r *SettingRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Setting, error) {
	return r.c.findMany(ctx, bson.M{"user_id": userID})
}

func (r *SettingRepository) Save(ctx context.Context, s domain.Setting) error {
	return r.c.replace(ctx, s.ID, s)
}

func (r *SettingRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
