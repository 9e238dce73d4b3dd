package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

func TestInventoryHandler_Create(t *testing.T) {
	stub := &stubInventoryService{
		createFn: func(_ context.Context, name, userID string) (domain.Inventory, error) {
			if name != "Pantry" || userID != "u1" {
				t.Fatalf("unexpected args: %s %s", name, userID)
			}
			return domain.Inventory{ID: "i1", Name: name, UserID: userID, Items: []domain.ItemRef{}}, nil
		},
	}
	h := NewInventoryHandler(stub, &stubItemService{})

	c, rec := newTestContext(http.MethodPost, "/v1/inventories", `{"name":"Pantry"}`)
	if err := h.Create(asUser(c, "u1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestInventoryHandler_UpdateItemsReplaceList(t *testing.T) {
	stub := &stubInventoryService{
		updateFn: func(_ context.Context, id string, patch domain.InventoryPatch) (domain.Inventory, error) {
			if !patch.Items.Set || len(patch.Items.Value) != 1 || patch.Items.Value[0].ID != "x" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return domain.Inventory{ID: id, Items: patch.Items.Value}, nil
		},
	}
	h := NewInventoryHandler(stub, &stubItemService{})

	c, rec := newTestContext(http.MethodPatch, "/v1/inventories/i1", `{"items":[{"id":"x"}]}`, "id", "i1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInventoryHandler_UpdateUnknownField(t *testing.T) {
	h := NewInventoryHandler(&stubInventoryService{}, &stubItemService{})

	c, _ := newTestContext(http.MethodPatch, "/v1/inventories/i1", `{"color":"red"}`, "id", "i1")
	if err := h.Update(c); !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestInventoryHandler_CreateItem(t *testing.T) {
	items := &stubItemService{
		createFn: func(_ context.Context, in domain.NewInventoryItemInput) (domain.InventoryItem, error) {
			if in.InventoryID != "i1" || in.Object["name"] != "flour" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.UnitCost.Equal(decimal.RequireFromString("2.50")) {
				t.Fatalf("unexpected unit cost %s", in.UnitCost)
			}
			if in.LastReorderDate == nil || in.LastReorderDate.Year() != 2024 || in.DeliveryDate != nil {
				t.Fatalf("unexpected dates: %v %v", in.LastReorderDate, in.DeliveryDate)
			}
			return domain.InventoryItem{ID: "it1", InventoryID: in.InventoryID}, nil
		},
	}
	h := NewInventoryHandler(&stubInventoryService{}, items)

	body := `{"object":{"name":"flour"},"quantityUnit":"kg","currentQuantity":3,"unitCost":"2.50","lastReorderDate":"2024-03-01T00:00:00Z"}`
	c, rec := newTestContext(http.MethodPost, "/v1/inventories/i1/items", body, "id", "i1")
	if err := h.CreateItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestInventoryHandler_CreateItemRequiresObject(t *testing.T) {
	h := NewInventoryHandler(&stubInventoryService{}, &stubItemService{})

	c, _ := newTestContext(http.MethodPost, "/v1/inventories/i1/items", `{"quantityUnit":"kg"}`, "id", "i1")
	if code := httpCode(h.CreateItem(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestInventoryHandler_DeleteItemFailure(t *testing.T) {
	items := &stubItemService{
		deleteFn: func(context.Context, string) error {
			return domain.Collaborator("deleteInventoryItem", errors.New("mongo down"))
		},
	}
	h := NewInventoryHandler(&stubInventoryService{}, items)

	c, _ := newTestContext(http.MethodDelete, "/v1/items/it1", "", "id", "it1")
	if err := h.DeleteItem(c); !errors.Is(err, domain.ErrCollaborator) {
		t.Fatalf("expected collaborator error, got %v", err)
	}
}

func TestInventoryHandler_UpdateCannotTransferOwnership(t *testing.T) {
	stub := &stubInventoryService{
		updateFn: func(context.Context, string, domain.InventoryPatch) (domain.Inventory, error) {
			t.Fatalf("service must not be called")
			return domain.Inventory{}, nil
		},
	}
	h := NewInventoryHandler(stub, &stubItemService{})

	c, _ := newTestContext(http.MethodPatch, "/v1/inventories/i1", `{"userId":"u2"}`, "id", "i1")
	if code := httpCode(h.Update(asUser(c, "u1"))); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestInventoryHandler_UpdateItemOntoForeignInventory(t *testing.T) {
	items := &stubItemService{}
	h := NewInventoryHandler(&stubInventoryService{owners: map[string]string{"mine": "u1", "theirs": "u2"}}, items)

	c, _ := newTestContext(http.MethodPatch, "/v1/items/x1", `{"inventoryId":"theirs"}`, "id", "x1")
	if code := httpCode(h.UpdateItem(asUser(c, "u1"))); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if items.updated != 0 {
		t.Fatalf("item must not be moved onto a foreign inventory")
	}

	c, _ = newTestContext(http.MethodPatch, "/v1/items/x1", `{"inventoryId":"mine"}`, "id", "x1")
	if err := h.UpdateItem(asUser(c, "u1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if items.updated != 1 {
		t.Fatalf("expected move within own inventories to reach the service")
	}
}
