package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// InventoryRepository implements ports.InventoryRepository and
// ports.InventoryRegistrar.
type InventoryRepository struct {
	c collection[domain.Inventory]
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{c: newCollection[domain.Inventory](db, collectionInventories, "inventory")}
}

func (r *InventoryRepository) Create(ctx context.Context, inv domain.Inventory) error {
	return r.c.insert(ctx, withItems(inv))
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (domain.Inventory, error) {
	inv, err := r.c.findByID(ctx, id)
	return withItems(inv), err
}

func (r *InventoryRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Inventory, error) {
	invs, err := r.c.findMany(ctx, bson.M{"user_id": userID})
	for i := range invs {
		invs[i] = withItems(invs[i])
	}
	return invs, err
}

func (r *InventoryRepository) Save(ctx context.Context, inv domain.Inventory) error {
	return r.c.replace(ctx, inv.ID, withItems(inv))
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// AddToInventory appends a reference to item onto its parent inventory in a
// single atomic update.
func (r *InventoryRepository) AddToInventory(ctx context.Context, item domain.InventoryItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.c.col.UpdateOne(ctx,
		bson.M{"_id": item.InventoryID},
		bson.M{"$push": bson.M{"items": domain.ItemRef{ID: item.ID}}},
	)
	if err != nil {
		return fmt.Errorf("add item %s to inventory: %w", item.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("inventory %s: %w", item.InventoryID, domain.ErrNotFound)
	}
	return nil
}

// withItems keeps Items a non-nil array on both sides of the wire so $push
// never meets a null field.
func withItems(inv domain.Inventory) domain.Inventory {
	if inv.Items == nil {
		inv.Items = []domain.ItemRef{}
	}
	return inv
}
