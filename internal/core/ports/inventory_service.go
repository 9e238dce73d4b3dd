package ports

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// InventoryService defines the inventory use cases.
type InventoryService interface {
	CreateInventory(ctx context.Context, name, userID string) (domain.Inventory, error)
	GetInventory(ctx context.Context, id string) (domain.Inventory, error)
	GetInventoriesByUserID(ctx context.Context, userID string) ([]domain.Inventory, error)
	UpdateInventory(ctx context.Context, id string, patch domain.InventoryPatch) (domain.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
}

// InventoryItemService defines the inventory item use cases.
type InventoryItemService interface {
	CreateInventoryItem(ctx context.Context, input domain.NewInventoryItemInput) (domain.InventoryItem, error)
	GetInventoryItem(ctx context.Context, id string) (domain.InventoryItem, error)
	GetInventoryItemsByInventoryID(ctx context.Context, inventoryID string) ([]domain.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, patch domain.InventoryItemPatch) (domain.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id string) error
}
