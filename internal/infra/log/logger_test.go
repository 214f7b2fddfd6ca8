package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotter/config"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "spotter"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestBuild_StampsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer

	logger, err := build(&buf, testConfig("info", false))
	require.NoError(t, err)

	logger.Info("server started")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "spotter", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "server started", record["msg"])
}

func TestBuild_LevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer

	logger, err := build(&buf, testConfig("warn", false))
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestBuild_PrettyUsesTextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger, err := build(&buf, testConfig("", true))
	require.NoError(t, err)

	logger.Info("server started")
	assert.Contains(t, buf.String(), "service=spotter")
	assert.Contains(t, buf.String(), "env=test")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			got, err := parseLogLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
