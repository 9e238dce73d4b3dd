package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/middleware"
	"github.com/kitchenops/timerkit/internal/core/domain"
)

// newTestContext builds an echo context for a JSON request. params alternate
// name, value.
func newTestContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func asUser(c echo.Context, userID string) echo.Context {
	c.Set(middleware.ContextUserID, userID)
	return c
}

type stubUserService struct {
	createFn       func(ctx context.Context, userName, password, email string) (domain.User, error)
	getFn          func(ctx context.Context, id string) (domain.User, error)
	updateFn       func(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	changeFn       func(ctx context.Context, id, current, next string) (domain.User, error)
	authenticateFn func(ctx context.Context, userName, password string) (domain.User, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubUserService) CreateUser(ctx context.Context, userName, password, email string) (domain.User, error) {
	return s.createFn(ctx, userName, password, email)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) ChangePassword(ctx context.Context, id, current, next string) (domain.User, error) {
	return s.changeFn(ctx, id, current, next)
}

func (s *stubUserService) AuthenticateUser(ctx context.Context, userName, password string) (domain.User, error) {
	return s.authenticateFn(ctx, userName, password)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubTimerService struct {
	createFn func(ctx context.Context, userID, name string, duration, interval int64) (domain.Timer, error)
	getFn    func(ctx context.Context, id string) (domain.Timer, error)
	listFn   func(ctx context.Context, userID string) ([]domain.Timer, error)
	updateFn func(ctx context.Context, id string, patch domain.TimerPatch) (domain.Timer, error)
	// stepFn backs start, stop, decrement and reset.
	stepFn   func(op, id string) (domain.Timer, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubTimerService) CreateTimer(ctx context.Context, userID, name string, duration, interval int64) (domain.Timer, error) {
	return s.createFn(ctx, userID, name, duration, interval)
}

func (s *stubTimerService) GetTimer(ctx context.Context, id string) (domain.Timer, error) {
	return s.getFn(ctx, id)
}

func (s *stubTimerService) GetTimersByUserID(ctx context.Context, userID string) ([]domain.Timer, error) {
	return s.listFn(ctx, userID)
}

func (s *stubTimerService) UpdateTimer(ctx context.Context, id string, patch domain.TimerPatch) (domain.Timer, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubTimerService) StartTimer(_ context.Context, id string) (domain.Timer, error) {
	return s.stepFn("start", id)
}

func (s *stubTimerService) StopTimer(_ context.Context, id string) (domain.Timer, error) {
	return s.stepFn("stop", id)
}

func (s *stubTimerService) DecrementTimer(_ context.Context, id string) (domain.Timer, error) {
	return s.stepFn("decrement", id)
}

func (s *stubTimerService) ResetTimer(_ context.Context, id string) (domain.Timer, error) {
	return s.stepFn("reset", id)
}

func (s *stubTimerService) DeleteTimer(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubAlertService struct {
	createFn func(ctx context.Context, timerID string, activationTime int64, message string) (domain.TimerAlert, error)
	listFn   func(ctx context.Context, timerID string) ([]domain.TimerAlert, error)
	updateFn func(ctx context.Context, id string, patch domain.TimerAlertPatch) (domain.TimerAlert, error)
	toggleFn func(activate bool, id string) (domain.TimerAlert, error)
}

func (s *stubAlertService) CreateTimerAlert(ctx context.Context, timerID string, activationTime int64, message string) (domain.TimerAlert, error) {
	return s.createFn(ctx, timerID, activationTime, message)
}

func (s *stubAlertService) GetTimerAlert(context.Context, string) (domain.TimerAlert, error) {
	return domain.TimerAlert{}, domain.ErrNotFound
}

func (s *stubAlertService) GetTimerAlertsByTimerID(ctx context.Context, timerID string) ([]domain.TimerAlert, error) {
	return s.listFn(ctx, timerID)
}

func (s *stubAlertService) UpdateTimerAlert(ctx context.Context, id string, patch domain.TimerAlertPatch) (domain.TimerAlert, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubAlertService) ActivateTimerAlert(_ context.Context, id string) (domain.TimerAlert, error) {
	return s.toggleFn(true, id)
}

func (s *stubAlertService) DeactivateTimerAlert(_ context.Context, id string) (domain.TimerAlert, error) {
	return s.toggleFn(false, id)
}

func (s *stubAlertService) DeleteTimerAlert(context.Context, string) error { return nil }

type stubInventoryService struct {
	createFn func(ctx context.Context, name, userID string) (domain.Inventory, error)
	listFn   func(ctx context.Context, userID string) ([]domain.Inventory, error)
	updateFn func(ctx context.Context, id string, patch domain.InventoryPatch) (domain.Inventory, error)
	owners   map[string]string
}

func (s *stubInventoryService) CreateInventory(ctx context.Context, name, userID string) (domain.Inventory, error) {
	return s.createFn(ctx, name, userID)
}

func (s *stubInventoryService) GetInventory(_ context.Context, id string) (domain.Inventory, error) {
	owner, ok := s.owners[id]
	if !ok {
		return domain.Inventory{}, domain.ErrNotFound
	}
	return domain.Inventory{ID: id, UserID: owner}, nil
}

func (s *stubInventoryService) GetInventoriesByUserID(ctx context.Context, userID string) ([]domain.Inventory, error) {
	return s.listFn(ctx, userID)
}

func (s *stubInventoryService) UpdateInventory(ctx context.Context, id string, patch domain.InventoryPatch) (domain.Inventory, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubInventoryService) DeleteInventory(context.Context, string) error { return nil }

type stubItemService struct {
	createFn func(ctx context.Context, in domain.NewInventoryItemInput) (domain.InventoryItem, error)
	deleteFn func(ctx context.Context, id string) error
	updated  int
}

func (s *stubItemService) CreateInventoryItem(ctx context.Context, in domain.NewInventoryItemInput) (domain.InventoryItem, error) {
	return s.createFn(ctx, in)
}

func (s *stubItemService) GetInventoryItem(context.Context, string) (domain.InventoryItem, error) {
	return domain.InventoryItem{}, domain.ErrNotFound
}

func (s *stubItemService) GetInventoryItemsByInventoryID(context.Context, string) ([]domain.InventoryItem, error) {
	return []domain.InventoryItem{}, nil
}

func (s *stubItemService) UpdateInventoryItem(context.Context, string, domain.InventoryItemPatch) (domain.InventoryItem, error) {
	s.updated++
	return domain.InventoryItem{}, nil
}

func (s *stubItemService) DeleteInventoryItem(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubSettingService struct {
	createFn func(ctx context.Context, userID, name string, value any) (domain.Setting, error)
	updateFn func(ctx context.Context, id string, patch domain.SettingPatch) (domain.Setting, error)
}

func (s *stubSettingService) CreateSetting(ctx context.Context, userID, name string, value any) (domain.Setting, error) {
	return s.createFn(ctx, userID, name, value)
}

func (s *stubSettingService) GetSetting(context.Context, string) (domain.Setting, error) {
	return domain.Setting{}, domain.ErrNotFound
}

func (s *stubSettingService) GetSettingsByUserID(context.Context, string) ([]domain.Setting, error) {
	return []domain.Setting{}, nil
}

func (s *stubSettingService) UpdateSetting(ctx context.Context, id string, patch domain.SettingPatch) (domain.Setting, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubSettingService) DeleteSetting(context.Context, string) error { return nil }
