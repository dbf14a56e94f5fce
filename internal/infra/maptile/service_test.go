package maptile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		name           string
		source         string
		expectedBucket string
		expectedName   string
	}{
		{
			name:           "file URL",
			source:         "file:///data/tiles/basemap.pmtiles",
			expectedBucket: "file:///data/tiles",
			expectedName:   "basemap",
		},
		{
			name:           "bare local path",
			source:         "/data/tiles/basemap.pmtiles",
			expectedBucket: "file:///data/tiles",
			expectedName:   "basemap",
		},
		{
			name:           "https URL",
			source:         "https://example.com/tiles/basemap.pmtiles",
			expectedBucket: "https://example.com/tiles",
			expectedName:   "basemap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, name := parseSourcePath(tt.source)
			assert.Equal(t, tt.expectedBucket, bucket)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}

func TestValidTileAddress(t *testing.T) {
	assert.True(t, validTileAddress(0, 0, 0, 15))
	assert.True(t, validTileAddress(10, 511, 340, 15))
	assert.False(t, validTileAddress(-1, 0, 0, 15))
	assert.False(t, validTileAddress(16, 0, 0, 15))
	assert.False(t, validTileAddress(2, 4, 0, 15))
	assert.False(t, validTileAddress(2, 0, -1, 15))
}

func TestTileAt(t *testing.T) {
	// Zoom 0 has exactly one tile, everything maps to it.
	z, x, y := TileAt(51.5074, -0.1278, 0)
	assert.Equal(t, 0, z)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	// Greenwich at zoom 10 sits just left of the antimeridian split.
	z, x, y = TileAt(51.5074, -0.1278, 10)
	assert.Equal(t, 10, z)
	assert.Equal(t, 511, x)
	assert.Equal(t, 340, y)
}

func TestDisabledTileService(t *testing.T) {
	svc := disabledTileService{}
	assert.False(t, svc.Enabled())

	_, err := svc.GetTile(context.Background(), 0, 0, 0)
	assert.ErrorIs(t, err, ErrTileNotFound)
}
