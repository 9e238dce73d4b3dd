package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OwnerResolver returns the id of the user that owns the record id.
type OwnerResolver func(ctx context.Context, id string) (string, error)

// RequireSelf restricts a route to the user named by the path parameter param.
// It must run after Auth.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(ContextUserID).(string)
			if caller == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if c.Param(param) != caller {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireOwner restricts a route to the owner of the record named by the path
// parameter param. It must run after Auth.
func RequireOwner(param string, resolve OwnerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := CheckOwner(c, resolve, c.Param(param)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// CheckOwner fails unless the record id belongs to the authenticated caller.
// A record owned by someone else is reported as missing so its existence does
// not leak. Resolver errors are returned unchanged. A nil resolve allows all.
func CheckOwner(c echo.Context, resolve OwnerResolver, id string) error {
	caller, _ := c.Get(ContextUserID).(string)
	if caller == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if resolve == nil {
		return nil
	}
	owner, err := resolve(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if owner != caller {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return nil
}
