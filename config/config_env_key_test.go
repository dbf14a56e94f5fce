package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"username": "svc",
		},
		"search": map[string]any{
			"defaultRadiusKm":         5.0,
			"verificationToleranceKm": 1.5,
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns camelCase segment with yaml key",
			rawKey:   "POSTGRES_SSLMODE",
			expected: "postgres.sslMode",
		},
		{
			name:     "nested search key",
			rawKey:   "SEARCH_DEFAULTRADIUSKM",
			expected: "search.defaultRadiusKm",
		},
		{
			name:     "unknown key falls back to lowercase",
			rawKey:   "PUBSUB_TOPICID",
			expected: "pubsub.topicid",
		},
		{
			name:     "leaf segment keeps yaml casing",
			rawKey:   "SEARCH_VERIFICATIONTOLERANCEKM",
			expected: "search.verificationToleranceKm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxzoom", normalizeToken("max-zoom"))
	assert.Equal(t, "", normalizeToken("___"))
}
