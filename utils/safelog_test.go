package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProduction(t *testing.T, production bool) {
	t.Helper()
	prevMode, prevLogger := IsProduction, slog.Default()
	IsProduction = production
	t.Cleanup(func() {
		IsProduction = prevMode
		slog.SetDefault(prevLogger)
	})
}

func TestMaskString(t *testing.T) {
	withProduction(t, true)

	masked := MaskString("user ada@example.com paid €42.50 with 4111 1111 1111 1111 for 3f2504e0-4f89-11d3-9a0c-0305e82c3301")

	assert.NotContains(t, masked, "ada@example.com")
	assert.NotContains(t, masked, "42.50")
	assert.NotContains(t, masked, "4111 1111")
	assert.Contains(t, masked, "3f2504e0...")
	assert.NotContains(t, masked, "0305e82c3301")
}

func TestMaskString_Development(t *testing.T) {
	withProduction(t, false)

	assert.Equal(t, "ada@example.com", MaskString("ada@example.com"))
	assert.Equal(t, "12.30", MaskAmount(12.3))
	assert.Equal(t, "abc", MaskID("abc"))
}

func TestMaskHelpers_Production(t *testing.T) {
	withProduction(t, true)

	assert.Equal(t, "***", MaskAmount(12.3))
	assert.Equal(t, "***@***.***", MaskEmail("ada@example.com"))
	assert.Equal(t, "12345678...", MaskID("1234567890"))
	assert.Equal(t, "***", MaskID("short"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel(" WARNING "))
	assert.Equal(t, slog.LevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestConfigureLogging_ProductionMasksJSON(t *testing.T) {
	withProduction(t, false)
	var buf bytes.Buffer
	ConfigureLogging(&buf, "INFO", true)

	LogAuthAction("login", "ada@example.com", false)
	SafeDebug("hidden at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "auth", entry["msg"])
	assert.Equal(t, "***@***.***", entry["email"])
	assert.Equal(t, "FAILED", entry["status"])
	assert.NotContains(t, buf.String(), "hidden at info level")
}

func TestLogAPIRequest_ShortensPathIDs(t *testing.T) {
	withProduction(t, false)
	var buf bytes.Buffer
	ConfigureLogging(&buf, "INFO", true)

	LogAPIRequest("DELETE", "/api/v1/expenses/3f2504e0-4f89-11d3-9a0c-0305e82c3301", "", 200, "1ms")

	assert.Contains(t, buf.String(), "/api/v1/expenses/3f2504e0...")
	assert.NotContains(t, buf.String(), "0305e82c3301")
}
