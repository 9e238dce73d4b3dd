package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/kitchenops/timerkit/docs"
	"github.com/kitchenops/timerkit/internal/api/handler"
	"github.com/kitchenops/timerkit/internal/api/middleware"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// Deps is everything the router needs to serve requests.
type Deps struct {
	Timers      ports.TimerService
	Alerts      ports.TimerAlertService
	Users       ports.UserService
	Inventories ports.InventoryService
	Items       ports.InventoryItemService
	Settings    ports.SettingService

	Tokens interface {
		handler.TokenSigner
		middleware.TokenVerifier
	}
	Ticks     handler.TickQueue
	TickDedup handler.TickDedup // optional

	Health map[string]handler.Pinger
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("timerkit"))

	// --- Operational endpoints (no auth required) ---
	health := handler.NewHealthHandler(d.Health)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	auth := handler.NewAuthHandler(d.Users, d.Tokens)
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)

	v1 := e.Group("/v1", middleware.Auth(d.Tokens))

	// Records addressed by id are only visible to their owner.
	own := ownership{
		timers:      d.Timers,
		alerts:      d.Alerts,
		inventories: d.Inventories,
		items:       d.Items,
		settings:    d.Settings,
	}
	ownTimer := middleware.RequireOwner("id", own.timer)
	ownAlert := middleware.RequireOwner("id", own.alert)
	ownInventory := middleware.RequireOwner("id", own.inventory)
	ownItem := middleware.RequireOwner("id", own.item)
	ownSetting := middleware.RequireOwner("id", own.setting)

	timers := handler.NewTimerHandler(d.Timers)
	ticks := handler.NewTickHandler(d.Ticks, d.TickDedup, own.timer)
	alerts := handler.NewAlertHandler(d.Alerts, own.timer)
	v1.POST("/timers", timers.Create)
	v1.POST("/timers/ticks", ticks.Enqueue)
	v1.GET("/timers/:id", timers.Get, ownTimer)
	v1.PATCH("/timers/:id", timers.Update, ownTimer)
	v1.DELETE("/timers/:id", timers.Delete, ownTimer)
	v1.POST("/timers/:id/start", timers.Start, ownTimer)
	v1.POST("/timers/:id/stop", timers.Stop, ownTimer)
	v1.POST("/timers/:id/decrement", timers.Decrement, ownTimer)
	v1.POST("/timers/:id/reset", timers.Reset, ownTimer)
	v1.GET("/timers/:id/alerts", alerts.ListByTimer, ownTimer)
	v1.POST("/timers/:id/alerts", alerts.Create, ownTimer)

	v1.GET("/alerts/:id", alerts.Get, ownAlert)
	v1.PATCH("/alerts/:id", alerts.Update, ownAlert)
	v1.DELETE("/alerts/:id", alerts.Delete, ownAlert)
	v1.POST("/alerts/:id/activate", alerts.Activate, ownAlert)
	v1.POST("/alerts/:id/deactivate", alerts.Deactivate, ownAlert)

	inventories := handler.NewInventoryHandler(d.Inventories, d.Items)
	v1.POST("/inventories", inventories.Create)
	v1.GET("/inventories/:id", inventories.Get, ownInventory)
	v1.PATCH("/inventories/:id", inventories.Update, ownInventory)
	v1.DELETE("/inventories/:id", inventories.Delete, ownInventory)
	v1.GET("/inventories/:id/items", inventories.ListItems, ownInventory)
	v1.POST("/inventories/:id/items", inventories.CreateItem, ownInventory)
	v1.GET("/items/:id", inventories.GetItem, ownItem)
	v1.PATCH("/items/:id", inventories.UpdateItem, ownItem)
	v1.DELETE("/items/:id", inventories.DeleteItem, ownItem)

	settings := handler.NewSettingHandler(d.Settings)
	v1.POST("/settings", settings.Create)
	v1.GET("/settings/:id", settings.Get, ownSetting)
	v1.PATCH("/settings/:id", settings.Update, ownSetting)
	v1.DELETE("/settings/:id", settings.Delete, ownSetting)

	// --- Per-user routes: the token must belong to :userId ---
	users := handler.NewUserHandler(d.Users)
	self := v1.Group("/users/:userId", middleware.RequireSelf("userId"))
	self.GET("", users.Get)
	self.PATCH("", users.Update)
	self.DELETE("", users.Delete)
	self.POST("/password", users.ChangePassword)
	self.GET("/timers", timers.ListByUser)
	self.GET("/inventories", inventories.ListByUser)
	self.GET("/settings", settings.ListByUser)

	return e
}

// requestLogger logs one structured line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
