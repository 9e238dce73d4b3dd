package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked object tracked with reorder information.
type InventoryItem struct {
	ID               string          `json:"id"`
	InventoryID      string          `json:"inventoryId"`
	Object           map[string]any  `json:"object"`
	QuantityUnit     string          `json:"quantityUnit"`
	CurrentQuantity  float64         `json:"currentQuantity"`
	ReorderQuantity  float64         `json:"reorderQuantity"`
	ReorderThreshold float64         `json:"reorderThreshold"`
	CostUnit         string          `json:"costUnit"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	ReorderCost      decimal.Decimal `json:"reorderCost"`
	LastReorderDate  *time.Time      `json:"lastReorderDate"`
	DeliveryDate     *time.Time      `json:"deliveryDate"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// NewInventoryItemInput carries the constructor arguments of an inventory item.
type NewInventoryItemInput struct {
	InventoryID      string
	Object           map[string]any
	QuantityUnit     string
	CurrentQuantity  float64
	ReorderQuantity  float64
	ReorderThreshold float64
	CostUnit         string
	UnitCost         decimal.Decimal
	ReorderCost      decimal.Decimal
	LastReorderDate  *time.Time
	DeliveryDate     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewInventoryItem builds an item from in. Zero CreatedAt/UpdatedAt default to now.
func NewInventoryItem(in NewInventoryItemInput) (InventoryItem, error) {
	if in.InventoryID == "" {
		return InventoryItem{}, NewValidationError("inventoryId", "cannot be empty")
	}
	if in.Object == nil {
		return InventoryItem{}, NewTypeMismatch("object", KindObject, KindNull)
	}

	now := time.Now().UTC()
	createdAt, updatedAt := in.CreatedAt, in.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return InventoryItem{
		ID:               uuid.NewString(),
		InventoryID:      in.InventoryID,
		Object:           cloneObject(in.Object),
		QuantityUnit:     in.QuantityUnit,
		CurrentQuantity:  in.CurrentQuantity,
		ReorderQuantity:  in.ReorderQuantity,
		ReorderThreshold: in.ReorderThreshold,
		CostUnit:         in.CostUnit,
		UnitCost:         in.UnitCost,
		ReorderCost:      in.ReorderCost,
		LastReorderDate:  in.LastReorderDate,
		DeliveryDate:     in.DeliveryDate,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

// NeedsReorder reports whether stock has dropped to the reorder threshold.
func (i InventoryItem) NeedsReorder() bool {
	return i.CurrentQuantity <= i.ReorderThreshold
}

// InventoryItemPatch is a partial update of an inventory item.
type InventoryItemPatch struct {
	InventoryID      Optional[string]
	Object           Optional[map[string]any]
	QuantityUnit     Optional[string]
	CurrentQuantity  Optional[float64]
	ReorderQuantity  Optional[float64]
	ReorderThreshold Optional[float64]
	CostUnit         Optional[string]
	UnitCost         Optional[decimal.Decimal]
	ReorderCost      Optional[decimal.Decimal]
	LastReorderDate  Optional[*time.Time]
	DeliveryDate     Optional[*time.Time]
	CreatedAt        Optional[time.Time]
	UpdatedAt        Optional[time.Time]
}

var inventoryItemProtected = []string{"id"}

// DecodeInventoryItemPatch parses a raw JSON partial update. lastReorderDate and
// deliveryDate accept an explicit null.
func DecodeInventoryItemPatch(data []byte) (InventoryItemPatch, error) {
	var p InventoryItemPatch
	schema := patchSchema{
		entity:    "inventoryItem",
		protected: inventoryItemProtected,
		fields: map[string]fieldDecoder{
			"inventoryId":      stringField(&p.InventoryID),
			"object":           objectField(&p.Object),
			"quantityUnit":     stringField(&p.QuantityUnit),
			"currentQuantity":  float64Field(&p.CurrentQuantity),
			"reorderQuantity":  float64Field(&p.ReorderQuantity),
			"reorderThreshold": float64Field(&p.ReorderThreshold),
			"costUnit":         stringField(&p.CostUnit),
			"unitCost":         decimalField(&p.UnitCost),
			"reorderCost":      decimalField(&p.ReorderCost),
			"lastReorderDate":  nullableTimeField(&p.LastReorderDate),
			"deliveryDate":     nullableTimeField(&p.DeliveryDate),
			"createdAt":        timeField(&p.CreatedAt),
			"updatedAt":        timeField(&p.UpdatedAt),
		},
	}
	if err := schema.decode(data); err != nil {
		return InventoryItemPatch{}, err
	}
	return p, p.Validate()
}

func (p InventoryItemPatch) Validate() error {
	if err := requireNonEmpty("inventoryId", p.InventoryID); err != nil {
		return err
	}
	if p.Object.Set && p.Object.Value == nil {
		return NewTypeMismatch("object", KindObject, KindNull)
	}
	return nil
}

// Apply merges p into i.
func (i InventoryItem) Apply(p InventoryItemPatch) InventoryItem {
	i.InventoryID = p.InventoryID.Or(i.InventoryID)
	i.Object = cloneObject(p.Object.Or(i.Object))
	i.QuantityUnit = p.QuantityUnit.Or(i.QuantityUnit)
	i.CurrentQuantity = p.CurrentQuantity.Or(i.CurrentQuantity)
	i.ReorderQuantity = p.ReorderQuantity.Or(i.ReorderQuantity)
	i.ReorderThreshold = p.ReorderThreshold.Or(i.ReorderThreshold)
	i.CostUnit = p.CostUnit.Or(i.CostUnit)
	i.UnitCost = p.UnitCost.Or(i.UnitCost)
	i.ReorderCost = p.ReorderCost.Or(i.ReorderCost)
	i.LastReorderDate = p.LastReorderDate.Or(i.LastReorderDate)
	i.DeliveryDate = p.DeliveryDate.Or(i.DeliveryDate)
	i.CreatedAt = p.CreatedAt.Or(i.CreatedAt)
	i.UpdatedAt = p.UpdatedAt.Or(i.UpdatedAt)
	return i
}

// cloneObject copies a decoded JSON object, including nested objects and
// arrays, so the item never shares mutable state with its caller.
func cloneObject(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneObject(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
