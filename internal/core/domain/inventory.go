package domain

import (
	"slices"

	"github.com/google/uuid"
)

// ItemRef points from an inventory to one of its items.
type ItemRef struct {
	ID string `json:"id" bson:"id"`
}

// Inventory groups inventory items for a user. Items keeps insertion order.
type Inventory struct {
	ID     string    `json:"id" bson:"_id"`
	Name   string    `json:"name" bson:"name"`
	UserID string    `json:"userId" bson:"user_id"`
	Items  []ItemRef `json:"items" bson:"items"`
}

// NewInventory returns an inventory with no items.
func NewInventory(name, userID string) (Inventory, error) {
	if name == "" {
		return Inventory{}, NewValidationError("name", "cannot be empty")
	}
	if userID == "" {
		return Inventory{}, NewValidationError("userId", "cannot be empty")
	}
	return Inventory{
		ID:     uuid.NewString(),
		Name:   name,
		UserID: userID,
		Items:  []ItemRef{},
	}, nil
}

// InventoryPatch is a partial update of an inventory.
type InventoryPatch struct {
	Name   Optional[string]
	UserID Optional[string]
	Items  Optional[[]ItemRef]
}

var inventoryProtected = []string{"id"}

// DecodeInventoryPatch parses a raw JSON partial update.
func DecodeInventoryPatch(data []byte) (InventoryPatch, error) {
	var p InventoryPatch
	schema := patchSchema{
		entity:    "inventory",
		protected: inventoryProtected,
		fields: map[string]fieldDecoder{
			"name":   stringField(&p.Name),
			"userId": stringField(&p.UserID),
			"items":  itemRefsField(&p.Items),
		},
	}
	if err := schema.decode(data); err != nil {
		return InventoryPatch{}, err
	}
	return p, p.Validate()
}

func (p InventoryPatch) Validate() error {
	if err := requireNonEmpty("name", p.Name); err != nil {
		return err
	}
	if err := requireNonEmpty("userId", p.UserID); err != nil {
		return err
	}
	if p.Items.Set {
		for _, ref := range p.Items.Value {
			if ref.ID == "" {
				return NewValidationError("items", "every item needs an id")
			}
		}
	}
	return nil
}

// Apply merges p into inv. The items slice is copied so snapshots never share it.
func (inv Inventory) Apply(p InventoryPatch) Inventory {
	inv.Name = p.Name.Or(inv.Name)
	inv.UserID = p.UserID.Or(inv.UserID)
	inv.Items = slices.Clone(p.Items.Or(inv.Items))
	if inv.Items == nil {
		inv.Items = []ItemRef{}
	}
	return inv
}
