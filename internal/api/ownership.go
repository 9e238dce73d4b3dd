package api

import (
	"context"

	"github.com/kitchenops/timerkit/internal/core/ports"
)

// ownership resolves the owning user of every record reachable by id. Alerts
// and items have no user of their own and inherit it from their timer or
// inventory.
type ownership struct {
	timers      ports.TimerService
	alerts      ports.TimerAlertService
	inventories ports.InventoryService
	items       ports.InventoryItemService
	settings    ports.SettingService
}

func (o ownership) timer(ctx context.Context, id string) (string, error) {
	t, err := o.timers.GetTimer(ctx, id)
	if err != nil {
		return "", err
	}
	return t.UserID, nil
}

func (o ownership) alert(ctx context.Context, id string) (string, error) {
	a, err := o.alerts.GetTimerAlert(ctx, id)
	if err != nil {
		return "", err
	}
	return o.timer(ctx, a.TimerID)
}

func (o ownership) inventory(ctx context.Context, id string) (string, error) {
	inv, err := o.inventories.GetInventory(ctx, id)
	if err != nil {
		return "", err
	}
	return inv.UserID, nil
}

func (o ownership) item(ctx context.Context, id string) (string, error) {
	it, err := o.items.GetInventoryItem(ctx, id)
	if err != nil {
		return "", err
	}
	return o.inventory(ctx, it.InventoryID)
}

func (o ownership) setting(ctx context.Context, id string) (string, error) {
	s, err := o.settings.GetSetting(ctx, id)
	if err != nil {
		return "", err
	}
	return s.UserID, nil
}
