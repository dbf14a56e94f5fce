package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /health for load balancer probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
