package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}

// --- Timers ---

type createTimerRequest struct {
	Name             string `json:"name"             validate:"required"`
	Duration         *int64 `json:"duration"         validate:"required,gte=0"`
	IntervalDuration *int64 `json:"intervalDuration" validate:"required,gt=0"`
}

type tickRequest struct {
	// TickID makes a tick batch idempotent when set.
	TickID   string   `json:"tickId,omitempty"`
	TimerIDs []string `json:"timerIds" validate:"required,min=1,max=1000,dive,required"`
}

type tickResponse struct {
	Accepted  int  `json:"accepted"`
	Duplicate bool `json:"duplicate,omitempty"`
}

type createTimerAlertRequest struct {
	ActivationTime *int64 `json:"activationTime" validate:"required,gte=0"`
	Message        string `json:"message"`
}

// --- Inventories ---

type createInventoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type createInventoryItemRequest struct {
	Object           map[string]any  `json:"object"           validate:"required"`
	QuantityUnit     string          `json:"quantityUnit"`
	CurrentQuantity  float64         `json:"currentQuantity"`
	ReorderQuantity  float64         `json:"reorderQuantity"`
	ReorderThreshold float64         `json:"reorderThreshold"`
	CostUnit         string          `json:"costUnit"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	ReorderCost      decimal.Decimal `json:"reorderCost"`
	LastReorderDate  *time.Time      `json:"lastReorderDate"`
	DeliveryDate     *time.Time      `json:"deliveryDate"`
}

func (r createInventoryItemRequest) toInput(inventoryID string) domain.NewInventoryItemInput {
	return domain.NewInventoryItemInput{
		InventoryID:      inventoryID,
		Object:           r.Object,
		QuantityUnit:     r.QuantityUnit,
		CurrentQuantity:  r.CurrentQuantity,
		ReorderQuantity:  r.ReorderQuantity,
		ReorderThreshold: r.ReorderThreshold,
		CostUnit:         r.CostUnit,
		UnitCost:         r.UnitCost,
		ReorderCost:      r.ReorderCost,
		LastReorderDate:  r.LastReorderDate,
		DeliveryDate:     r.DeliveryDate,
	}
}

// --- Settings ---

type createSettingRequest struct {
	Name  string `json:"name" validate:"required"`
	Value any    `json:"value"`
}
