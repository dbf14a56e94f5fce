package impl

import (
	"io"
	"log/slog"

	"localhelp/config"
)

// newTestLogger returns a logger that discards all output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns a config with the default search parameters.
func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			DefaultRadiusKm:         1,
			MaxRadiusKm:             50,
			VerificationToleranceKm: 1.5,
		},
	}
}
