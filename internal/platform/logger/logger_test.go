package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitafernandez/armario-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		debugOn bool
		warnOn  bool
	}{
		{name: "debug level", level: "debug", debugOn: true, warnOn: true},
		{name: "warn level", level: "warn", debugOn: false, warnOn: true},
		{name: "error level", level: "error", debugOn: false, warnOn: false},
		{name: "case insensitive", level: "INFO", debugOn: false, warnOn: true},
		{name: "invalid falls back to info", level: "verbose", debugOn: false, warnOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.level})
			require.NotNil(t, log)

			assert.Equal(t, tt.debugOn, log.Enabled(nil, slog.LevelDebug))
			assert.Equal(t, tt.warnOn, log.Enabled(nil, slog.LevelWarn))
		})
	}
}

func TestSetup_SetsProcessDefault(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})
	assert.Equal(t, log, slog.Default())
}
