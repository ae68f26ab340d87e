package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/config"
	"mrtrack/internal/logging"
)

func TestConfigure_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	logging.Configure(l, config.LogConfig{Level: "warn", Format: "json"}, &buf)

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	logging.LogError(l, "approvals", "Reject", logrus.Fields{"approval_id": "a1"}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "approvals", entry["module"])
	assert.Equal(t, "Reject", entry["op"])
	assert.Equal(t, "a1", entry["approval_id"])
	assert.Equal(t, "error", entry["level"])
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	logging.Configure(l, config.LogConfig{Level: "loud", Format: "console"}, &buf)

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	l.Debug("hidden")
	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}
