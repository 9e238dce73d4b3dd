package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// UserRepository implements ports.UserRepository, ports.UniquenessPolicy and
// ports.UserExistence over the users collection.
type UserRepository struct {
	c collection[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{c: newCollection[domain.User](db, collectionUsers, "user")}
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	return r.c.insert(ctx, u)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return r.c.findByID(ctx, id)
}

func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (domain.User, error) {
	return r.c.findOne(ctx, bson.M{"user_name": userName})
}

func (r *UserRepository) Save(ctx context.Context, u domain.User) error {
	return r.c.replace(ctx, u.ID, u)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *UserRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	return r.c.exists(ctx, bson.M{"_id": userID})
}

func (r *UserRepository) IsUserNameUnique(ctx context.Context, userName string) (bool, error) {
	taken, err := r.c.exists(ctx, bson.M{"user_name": userName})
	return !taken, err
}

func (r *UserRepository) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	taken, err := r.c.exists(ctx, bson.M{"email": email})
	return !taken, err
}
