package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// InventoryPorts are the collaborators of InventoryService.
type InventoryPorts struct {
	Inventories ports.InventoryRepository
	Users       ports.UserExistence
}

type InventoryService struct {
	inventories ports.InventoryRepository
	users       ports.UserExistence
	log         zerolog.Logger
}

func NewInventoryService(p InventoryPorts, log zerolog.Logger) (*InventoryService, error) {
	if err := requirePorts("inventory", map[string]any{"Inventories": p.Inventories, "Users": p.Users}); err != nil {
		return nil, err
	}
	return &InventoryService{
		inventories: p.Inventories,
		users:       p.Users,
		log:         log.With().Str("service", "inventory").Logger(),
	}, nil
}

func (s *InventoryService) CreateInventory(ctx context.Context, name, userID string) (domain.Inventory, error) {
	inv, err := domain.NewInventory(name, userID)
	if err != nil {
		return domain.Inventory{}, err
	}
	if err := s.inventories.Create(ctx, inv); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create inventory")
		return domain.Inventory{}, domain.Collaborator("createInventory", err)
	}
	s.log.Info().Str("inventory_id", inv.ID).Str("user_id", userID).Msg("inventory created")
	return inv, nil
}

func (s *InventoryService) GetInventory(ctx context.Context, id string) (domain.Inventory, error) {
	if err := requireID("id", id); err != nil {
		return domain.Inventory{}, err
	}
	inv, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return domain.Inventory{}, domain.Collaborator("findInventoryById", err)
	}
	return inv, nil
}

func (s *InventoryService) GetInventoriesByUserID(ctx context.Context, userID string) ([]domain.Inventory, error) {
	return listOwned(ctx, s.users, userID, "findInventoriesByUserId", s.inventories.FindByUserID)
}

// UpdateInventory applies a partial update; items, when given, replace the whole list.
func (s *InventoryService) UpdateInventory(ctx context.Context, id string, patch domain.InventoryPatch) (domain.Inventory, error) {
	if err := patch.Validate(); err != nil {
		return domain.Inventory{}, err
	}
	inv, err := fetchMergeSave(ctx, s.inventories, "Inventory", id, pure(func(current domain.Inventory) domain.Inventory {
		return current.Apply(patch)
	}))
	if err != nil {
		failure(s.log, err).Str("inventory_id", id).Msg("inventory update failed")
		return domain.Inventory{}, err
	}
	s.log.Info().Str("inventory_id", id).Int("items", len(inv.Items)).Msg("inventory updated")
	return inv, nil
}

func (s *InventoryService) DeleteInventory(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.inventories.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("inventory_id", id).Msg("failed to delete inventory")
		return domain.Collaborator("deleteInventory", err)
	}
	s.log.Info().Str("inventory_id", id).Msg("inventory deleted")
	return nil
}

// InventoryItemPorts are the collaborators of InventoryItemService.
type InventoryItemPorts struct {
	Items     ports.InventoryItemRepository
	Registrar ports.InventoryRegistrar
}

type InventoryItemService struct {
	items     ports.InventoryItemRepository
	registrar ports.InventoryRegistrar
	log       zerolog.Logger
}

func NewInventoryItemService(p InventoryItemPorts, log zerolog.Logger) (*InventoryItemService, error) {
	if err := requirePorts("inventory item", map[string]any{"Items": p.Items, "Registrar": p.Registrar}); err != nil {
		return nil, err
	}
	return &InventoryItemService{
		items:     p.Items,
		registrar: p.Registrar,
		log:       log.With().Str("service", "inventory_item").Logger(),
	}, nil
}

// CreateInventoryItem persists a new item and then registers it with its
// inventory. Either step failing fails the call.
func (s *InventoryItemService) CreateInventoryItem(ctx context.Context, input domain.NewInventoryItemInput) (domain.InventoryItem, error) {
	item, err := domain.NewInventoryItem(input)
	if err != nil {
		return domain.InventoryItem{}, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		s.log.Error().Err(err).Str("inventory_id", input.InventoryID).Msg("failed to create inventory item")
		return domain.InventoryItem{}, domain.Collaborator("createInventoryItem", err)
	}
	if err := s.registrar.AddToInventory(ctx, item); err != nil {
		s.log.Error().Err(err).Str("item_id", item.ID).Str("inventory_id", item.InventoryID).Msg("failed to add item to inventory")
		return domain.InventoryItem{}, domain.Collaborator("addToInventory", err)
	}

	s.log.Info().Str("item_id", item.ID).Str("inventory_id", item.InventoryID).Msg("inventory item created")
	return item, nil
}

func (s *InventoryItemService) GetInventoryItem(ctx context.Context, id string) (domain.InventoryItem, error) {
	if err := requireID("id", id); err != nil {
		return domain.InventoryItem{}, err
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, domain.Collaborator("findInventoryItemById", err)
	}
	return item, nil
}

func (s *InventoryItemService) GetInventoryItemsByInventoryID(ctx context.Context, inventoryID string) ([]domain.InventoryItem, error) {
	if err := requireID("inventoryId", inventoryID); err != nil {
		return nil, err
	}
	items, err := s.items.FindByInventoryID(ctx, inventoryID)
	if err != nil {
		return nil, domain.Collaborator("findInventoryItemsByInventoryId", err)
	}
	return nonNil(items), nil
}

func (s *InventoryItemService) UpdateInventoryItem(ctx context.Context, id string, patch domain.InventoryItemPatch) (domain.InventoryItem, error) {
	if err := patch.Validate(); err != nil {
		return domain.InventoryItem{}, err
	}
	item, err := fetchMergeSave(ctx, s.items, "InventoryItem", id, pure(func(current domain.InventoryItem) domain.InventoryItem {
		return current.Apply(patch)
	}))
	if err != nil {
		failure(s.log, err).Str("item_id", id).Msg("inventory item update failed")
		return domain.InventoryItem{}, err
	}
	s.log.Info().Str("item_id", id).Bool("needs_reorder", item.NeedsReorder()).Msg("inventory item updated")
	return item, nil
}

func (s *InventoryItemService) DeleteInventoryItem(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("item_id", id).Msg("failed to delete inventory item")
		return domain.Collaborator("deleteInventoryItem", err)
	}
	s.log.Info().Str("item_id", id).Msg("inventory item deleted")
	return nil
}
