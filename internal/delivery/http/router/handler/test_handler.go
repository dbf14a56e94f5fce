package handler

import (
	"net/http"

	deliveryctx "localhelp/internal/delivery/context"
	"localhelp/internal/delivery/http/response"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler exposes endpoints that exercise the error pipeline. The routes
// are only registered when testRoutes.enabled is set, never in production.
type TestHandler struct{}

// NewTestHandler is the constructor for TestHandler.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Echo handles GET /test/echo.
func (h *TestHandler) Echo(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message":   c.QueryParam("message"),
		"requestId": c.Response().Header().Get(deliveryctx.HeaderXRequestID),
	}, "")
}

// AppError handles GET /test/app-error and returns a typed business error.
func (h *TestHandler) AppError(c echo.Context) error {
	return domainerrors.ErrNotFound.WithDetails("requested test resource does not exist")
}

// PlainError handles GET /test/plain-error and returns an untyped error.
func (h *TestHandler) PlainError(c echo.Context) error {
	return errors.New("unexpected test failure")
}

// Panic handles GET /test/panic to verify the recover middleware.
func (h *TestHandler) Panic(c echo.Context) error {
	panic("test panic")
}
