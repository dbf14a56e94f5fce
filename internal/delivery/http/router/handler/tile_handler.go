package handler

import (
	"net/http"
	"strconv"

	"localhelp/internal/delivery/http/response"
	"localhelp/internal/errors"
	"localhelp/internal/infra/maptile"

	"github.com/labstack/echo/v4"
)

// TileHandler serves basemap vector tiles.
type TileHandler struct {
	tileService maptile.Service
}

// NewTileHandler is the constructor for TileHandler.
func NewTileHandler(tileService maptile.Service) *TileHandler {
	return &TileHandler{tileService: tileService}
}

// GetTile handles GET /tiles/:z/:x/:y.
func (h *TileHandler) GetTile(c echo.Context) error {
	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(c.Param("y"))
	if errZ != nil || errX != nil || errY != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Tile address must be numeric")
	}

	tile, err := h.tileService.GetTile(c.Request().Context(), z, x, y)
	if err != nil {
		if errors.Is(err, maptile.ErrTileNotFound) {
			return c.NoContent(http.StatusNotFound)
		}

		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "application/vnd.mapbox-vector-tile", tile)
}
