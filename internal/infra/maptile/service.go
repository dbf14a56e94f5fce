// Package maptile serves basemap vector tiles from a PMTiles archive so the
// client map view does not depend on an external tile provider.
package maptile

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"localhelp/config"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"

	// Register the gs:// blob driver so archives can live in Cloud Storage.
	_ "gocloud.dev/blob/gcsblob"
)

const defaultMaxZoom = 15

// ErrTileNotFound is returned when the archive has no data for the tile.
var ErrTileNotFound = errors.New("tile not found")

// Service provides read access to basemap tiles.
type Service interface {
	// Enabled reports whether tile serving is configured.
	Enabled() bool

	// GetTile returns the MVT payload for a tile address.
	GetTile(ctx context.Context, z, x, y int) ([]byte, error)

	// MaxZoom returns the deepest zoom level served.
	MaxZoom() int
}

type tileService struct {
	tilesetName string
	maxZoom     int
	logger      *slog.Logger
	server      *pmtiles.Server
}

// disabledTileService is used when no tile source is configured.
type disabledTileService struct{}

func (disabledTileService) Enabled() bool { return false }
func (disabledTileService) GetTile(context.Context, int, int, int) ([]byte, error) {
	return nil, ErrTileNotFound
}
func (disabledTileService) MaxZoom() int { return 0 }

// ServiceParams holds dependencies for the tile service
type ServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewService creates a tile service backed by a PMTiles archive. The archive
// can live on local disk, HTTP or cloud storage; the PMTiles server resolves
// it with range requests either way.
func NewService(params ServiceParams) (Service, error) {
	cfg := params.Config.MapTiles
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Map tiles disabled")

		return disabledTileService{}, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("map tile source is required when enabled")
	}

	maxZoom := cfg.MaxZoom
	if maxZoom <= 0 {
		maxZoom = defaultMaxZoom
	}

	bucketPath, tilesetName := parseSourcePath(cfg.Source)

	// The pmtiles server insists on a *log.Logger.
	silentLogger := log.New(io.Discard, "", 0)

	cacheSize := 64 // Cache up to 64 tiles in memory
	server, err := pmtiles.NewServer(bucketPath, "", silentLogger, cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	logger.Info("Map tile service initialized",
		slog.String("source", cfg.Source),
		slog.String("tileset", tilesetName),
		slog.Int("max_zoom", maxZoom),
	)

	return &tileService{
		tilesetName: tilesetName,
		maxZoom:     maxZoom,
		logger:      logger,
		server:      server,
	}, nil
}

func (s *tileService) Enabled() bool {
	return true
}

func (s *tileService) MaxZoom() int {
	return s.maxZoom
}

// GetTile returns the MVT payload for a tile address.
func (s *tileService) GetTile(ctx context.Context, z, x, y int) ([]byte, error) {
	if !validTileAddress(z, x, y, s.maxZoom) {
		return nil, ErrTileNotFound
	}

	tilePath := fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tilesetName, z, x, y)

	statusCode, _, data := s.server.Get(ctx, tilePath)
	if statusCode == http.StatusNotFound {
		return nil, ErrTileNotFound
	}
	if statusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", statusCode)
	}

	return data, nil
}

// TileAt returns the tile address containing a coordinate at the given zoom.
// The handler uses it for the "center my map here" shortcut.
func TileAt(latitude, longitude float64, zoom int) (z, x, y int) {
	tile := maptile.At(orb.Point{longitude, latitude}, maptile.Zoom(zoom))

	return int(tile.Z), int(tile.X), int(tile.Y)
}

// validTileAddress checks z against the served range and x/y against the
// 2^z grid for that zoom.
func validTileAddress(z, x, y, maxZoom int) bool {
	if z < 0 || z > maxZoom {
		return false
	}
	size := 1 << uint(z)

	return x >= 0 && x < size && y >= 0 && y < size
}

// parseSourcePath extracts the bucket directory and tileset name from a source path.
// Examples:
//   - "file:///path/to/basemap.pmtiles" -> ("file:///path/to", "basemap")
//   - "/path/to/basemap.pmtiles" -> ("file:///path/to", "basemap")
//   - "https://example.com/tiles/basemap.pmtiles" -> ("https://example.com/tiles", "basemap")
func parseSourcePath(source string) (bucketPath, tilesetName string) {
	if strings.HasPrefix(source, "file://") {
		path := strings.TrimPrefix(source, "file://")
		dir := filepath.Dir(path)
		filename := filepath.Base(path)
		tilesetName = strings.TrimSuffix(filename, ".pmtiles")

		return "file://" + dir, tilesetName
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")
		if lastSlash > 0 {
			bucketPath = source[:lastSlash]
			filename := source[lastSlash+1:]
			tilesetName = strings.TrimSuffix(filename, ".pmtiles")

			return bucketPath, tilesetName
		}
	}

	dir := filepath.Dir(source)
	filename := filepath.Base(source)
	tilesetName = strings.TrimSuffix(filename, ".pmtiles")

	return "file://" + dir, tilesetName
}
