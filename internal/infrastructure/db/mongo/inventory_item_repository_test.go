package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

func TestItemDoc_KeepsDecimalPrecision(t *testing.T) {
	delivered := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	item := domain.InventoryItem{
		ID:           "i1",
		InventoryID:  "inv1",
		Object:       map[string]any{"name": "saffron"},
		UnitCost:     decimal.RequireFromString("0.1"),
		ReorderCost:  decimal.RequireFromString("12345678901234.56789"),
		DeliveryDate: &delivered,
		CreatedAt:    delivered,
		UpdatedAt:    delivered,
	}

	doc, err := toItemDoc(item)
	if err != nil {
		t.Fatalf("toItemDoc returned error: %v", err)
	}
	back, err := doc.toDomain()
	if err != nil {
		t.Fatalf("toDomain returned error: %v", err)
	}

	if !back.UnitCost.Equal(item.UnitCost) || !back.ReorderCost.Equal(item.ReorderCost) {
		t.Fatalf("costs changed: %s / %s", back.UnitCost, back.ReorderCost)
	}
	if back.LastReorderDate != nil {
		t.Fatalf("expected nil last reorder date")
	}
	if back.DeliveryDate == nil || !back.DeliveryDate.Equal(delivered) {
		t.Fatalf("delivery date changed: %v", back.DeliveryDate)
	}
}

func TestItemDoc_NilObjectBecomesEmpty(t *testing.T) {
	back, err := itemDoc{ID: "i1", UnitCost: mustDecimal128(t, "0"), ReorderCost: mustDecimal128(t, "0")}.toDomain()
	if err != nil {
		t.Fatalf("toDomain returned error: %v", err)
	}
	if back.Object == nil {
		t.Fatalf("expected empty object")
	}
}

func TestWithItems(t *testing.T) {
	if got := withItems(domain.Inventory{}); got.Items == nil {
		t.Fatalf("expected non-nil items")
	}
}

func mustDecimal128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	if err != nil {
		t.Fatalf("ParseDecimal128(%q): %v", s, err)
	}
	return d
}
