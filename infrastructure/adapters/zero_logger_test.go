package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologWrapper_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologWrapperWithOptions(&buf, "info", false).With(map[string]interface{}{"run_id": "run-1"})

	logger.ErrorWithFields(errors.New("boom"), "Step failed", map[string]interface{}{"step": "guide"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "guide", entry["step"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "Step failed", entry["message"])
}

func TestZerologWrapper_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologWrapperWithOptions(&buf, "warn", false)

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestZerologWrapper_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologWrapperWithOptions(&buf, "chatty", false)

	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
