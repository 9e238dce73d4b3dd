package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/api/middleware"
	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

type InventoryHandler struct {
	inventories ports.InventoryService
	items       ports.InventoryItemService
}

func NewInventoryHandler(inventories ports.InventoryService, items ports.InventoryItemService) *InventoryHandler {
	return &InventoryHandler{inventories: inventories, items: items}
}

// Create handles POST /v1/inventories.
//
// @Summary   Create an inventory
// @Tags      inventories
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createInventoryRequest  true  "Inventory to create"
// @Success   201   {object}  domain.Inventory
// @Router    /v1/inventories [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createInventoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	inv, err := h.inventories.CreateInventory(c.Request().Context(), req.Name, userID)
	metrics.Observe("create_inventory", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inv)
}

// Get handles GET /v1/inventories/:id.
//
// @Summary   Get an inventory
// @Tags      inventories
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Inventory ID"
// @Success   200  {object}  domain.Inventory
// @Router    /v1/inventories/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	inv, err := h.inventories.GetInventory(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_inventory", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// ListByUser handles GET /v1/users/:userId/inventories.
//
// @Summary   List a user's inventories
// @Tags      inventories
// @Produce   json
// @Security  BearerAuth
// @Param     userId  path     string  true  "User ID"
// @Success   200     {array}  domain.Inventory
// @Router    /v1/users/{userId}/inventories [get]
func (h *InventoryHandler) ListByUser(c echo.Context) error {
	invs, err := h.inventories.GetInventoriesByUserID(c.Request().Context(), c.Param("userId"))
	metrics.Observe("get_inventories_by_user_id", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invs)
}

// Update handles PATCH /v1/inventories/:id. A given items list replaces the stored one.
//
// @Summary   Partially update an inventory
// @Tags      inventories
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Inventory ID"
// @Success   200  {object}  domain.Inventory
// @Failure   403  {object}  errorResponse  "userId names another user"
// @Router    /v1/inventories/{id} [patch]
func (h *InventoryHandler) Update(c echo.Context) error {
	body, err := patchBody(c)
	if err != nil {
		return err
	}
	patch, err := domain.DecodeInventoryPatch(body)
	if err != nil {
		metrics.Observe("update_inventory", err)
		return err
	}
	if err := keepOwner(c, patch.UserID); err != nil {
		return err
	}

	inv, err := h.inventories.UpdateInventory(c.Request().Context(), c.Param("id"), patch)
	metrics.Observe("update_inventory", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// Delete handles DELETE /v1/inventories/:id.
//
// @Summary   Delete an inventory
// @Tags      inventories
// @Security  BearerAuth
// @Param     id  path  string  true  "Inventory ID"
// @Success   204
// @Router    /v1/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	err := h.inventories.DeleteInventory(c.Request().Context(), c.Param("id"))
	metrics.Observe("delete_inventory", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateItem handles POST /v1/inventories/:id/items. The item is stored and
// then appended to the inventory's item list.
//
// @Summary   Add an item to an inventory
// @Tags      items
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string                      true  "Inventory ID"
// @Param     body  body      createInventoryItemRequest  true  "Item to create"
// @Success   201   {object}  domain.InventoryItem
// @Failure   502   {object}  errorResponse
// @Router    /v1/inventories/{id}/items [post]
func (h *InventoryHandler) CreateItem(c echo.Context) error {
	var req createInventoryItemRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	item, err := h.items.CreateInventoryItem(c.Request().Context(), req.toInput(c.Param("id")))
	metrics.Observe("create_inventory_item", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /v1/inventories/:id/items.
//
// @Summary   List an inventory's items
// @Tags      items
// @Produce   json
// @Security  BearerAuth
// @Param     id   path     string  true  "Inventory ID"
// @Success   200  {array}  domain.InventoryItem
// @Router    /v1/inventories/{id}/items [get]
func (h *InventoryHandler) ListItems(c echo.Context) error {
	items, err := h.items.GetInventoryItemsByInventoryID(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_inventory_items_by_inventory_id", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem handles GET /v1/items/:id.
//
// @Summary   Get an inventory item
// @Tags      items
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Item ID"
// @Success   200  {object}  domain.InventoryItem
// @Router    /v1/items/{id} [get]
func (h *InventoryHandler) GetItem(c echo.Context) error {
	item, err := h.items.GetInventoryItem(c.Request().Context(), c.Param("id"))
	metrics.Observe("get_inventory_item", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateItem handles PATCH /v1/items/:id.
//
// @Summary   Partially update an inventory item
// @Tags      items
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Item ID"
// @Success   200  {object}  domain.InventoryItem
// @Router    /v1/items/{id} [patch]
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	body, err := patchBody(c)
	if err != nil {
		return err
	}
	patch, err := domain.DecodeInventoryItemPatch(body)
	if err != nil {
		metrics.Observe("update_inventory_item", err)
		return err
	}
	if patch.InventoryID.Set {
		if err := middleware.CheckOwner(c, h.inventoryOwner, patch.InventoryID.Value); err != nil {
			return err
		}
	}

	item, err := h.items.UpdateInventoryItem(c.Request().Context(), c.Param("id"), patch)
	metrics.Observe("update_inventory_item", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /v1/items/:id.
//
// @Summary   Delete an inventory item
// @Tags      items
// @Security  BearerAuth
// @Param     id  path  string  true  "Item ID"
// @Success   204
// @Router    /v1/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	err := h.items.DeleteInventoryItem(c.Request().Context(), c.Param("id"))
	metrics.Observe("delete_inventory_item", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InventoryHandler) inventoryOwner(ctx context.Context, id string) (string, error) {
	inv, err := h.inventories.GetInventory(ctx, id)
	if err != nil {
		return "", err
	}
	return inv.UserID, nil
}
