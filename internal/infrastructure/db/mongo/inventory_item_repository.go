package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// itemDoc is the stored shape of an inventory item. Costs are kept as
// Decimal128 so no precision is lost to floating point.
type itemDoc struct {
	ID               string               `bson:"_id"`
	InventoryID      string               `bson:"inventory_id"`
	Object           map[string]any       `bson:"object"`
	QuantityUnit     string               `bson:"quantity_unit"`
	CurrentQuantity  float64              `bson:"current_quantity"`
	ReorderQuantity  float64              `bson:"reorder_quantity"`
	ReorderThreshold float64              `bson:"reorder_threshold"`
	CostUnit         string               `bson:"cost_unit"`
	UnitCost         primitive.Decimal128 `bson:"unit_cost"`
	ReorderCost      primitive.Decimal128 `bson:"reorder_cost"`
	LastReorderDate  *time.Time           `bson:"last_reorder_date"`
	DeliveryDate     *time.Time           `bson:"delivery_date"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

func toItemDoc(i domain.InventoryItem) (itemDoc, error) {
	unit, err := toDecimal128(i.UnitCost)
	if err != nil {
		return itemDoc{}, fmt.Errorf("unit cost: %w", err)
	}
	reorder, err := toDecimal128(i.ReorderCost)
	if err != nil {
		return itemDoc{}, fmt.Errorf("reorder cost: %w", err)
	}
	return itemDoc{
		ID:               i.ID,
		InventoryID:      i.InventoryID,
		Object:           i.Object,
		QuantityUnit:     i.QuantityUnit,
		CurrentQuantity:  i.CurrentQuantity,
		ReorderQuantity:  i.ReorderQuantity,
		ReorderThreshold: i.ReorderThreshold,
		CostUnit:         i.CostUnit,
		UnitCost:         unit,
		ReorderCost:      reorder,
		LastReorderDate:  i.LastReorderDate,
		DeliveryDate:     i.DeliveryDate,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}, nil
}

func (d itemDoc) toDomain() (domain.InventoryItem, error) {
	unit, err := decimal.NewFromString(d.UnitCost.String())
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("unit cost: %w", err)
	}
	reorder, err := decimal.NewFromString(d.ReorderCost.String())
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("reorder cost: %w", err)
	}
	object := d.Object
	if object == nil {
		object = map[string]any{}
	}
	return domain.InventoryItem{
		ID:               d.ID,
		InventoryID:      d.InventoryID,
		Object:           object,
		QuantityUnit:     d.QuantityUnit,
		CurrentQuantity:  d.CurrentQuantity,
		ReorderQuantity:  d.ReorderQuantity,
		ReorderThreshold: d.ReorderThreshold,
		CostUnit:         d.CostUnit,
		UnitCost:         unit,
		ReorderCost:      reorder,
		LastReorderDate:  utcPtr(d.LastReorderDate),
		DeliveryDate:     utcPtr(d.DeliveryDate),
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// InventoryItemRepository implements ports.InventoryItemRepository.
type InventoryItemRepository struct {
	c collection[itemDoc]
}

func NewInventoryItemRepository(db *mongo.Database) *InventoryItemRepository {
	return &InventoryItemRepository{c: newCollection[itemDoc](db, collectionInventoryItems, "inventory item")}
}

func (r *InventoryItemRepository) Create(ctx context.Context, item domain.InventoryItem) error {
	doc, err := toItemDoc(item)
	if err != nil {
		return err
	}
	return r.c.insert(ctx, doc)
}

func (r *InventoryItemRepository) FindByID(ctx context.Context, id string) (domain.InventoryItem, error) {
	doc, err := r.c.findByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return doc.toDomain()
}

func (r *InventoryItemRepository) FindByInventoryID(ctx context.Context, inventoryID string) ([]domain.InventoryItem, error) {
	docs, err := r.c.findMany(ctx, bson.M{"inventory_id": inventoryID})
	if err != nil {
		return nil, err
	}
	items := make([]domain.InventoryItem, 0, len(docs))
	for _, d := range docs {
		item, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("inventory item %s: %w", d.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *InventoryItemRepository) Save(ctx context.Context, item domain.InventoryItem) error {
	doc, err := toItemDoc(item)
	if err != nil {
		return err
	}
	return r.c.replace(ctx, item.ID, doc)
}

func (r *InventoryItemRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
