package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

// TokenSigner issues access tokens for authenticated users.
type TokenSigner interface {
	Issue(user domain.User) (string, error)
}

type AuthHandler struct {
	users  ports.UserService
	tokens TokenSigner
}

func NewAuthHandler(users ports.UserService, tokens TokenSigner) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.users.CreateUser(c.Request().Context(), req.UserName, req.Password, req.Email)
	metrics.Observe("create_user", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{User: &user})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.users.AuthenticateUser(c.Request().Context(), req.UserName, req.Password)
	metrics.Observe("authenticate_user", err)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: &user})
}
