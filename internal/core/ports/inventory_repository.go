package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// InventoryRepository persists inventories.
type InventoryRepository interface {
	Create(ctx context.Context, inv domain.Inventory) error
	FindByID(ctx context.Context, id string) (domain.Inventory, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Inventory, error)
	Save(ctx context.Context, inv domain.Inventory) error
	Delete(ctx context.Context, id string) error
}

// InventoryItemRepository persists inventory items.
type InventoryItemRepository interface {
	Create(ctx context.Context, item domain.InventoryItem) error
	FindByID(ctx context.Context, id string) (domain.InventoryItem, error)
	FindByInventoryID(ctx context.Context, inventoryID string) ([]domain.InventoryItem, error)
	Save(ctx context.Context, item domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

// InventoryRegistrar records a new item against its parent inventory.
type InventoryRegistrar interface {
	AddToInventory(ctx context.Context, item domain.InventoryItem) error
}
