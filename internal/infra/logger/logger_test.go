package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_status_bot/internal/infra/config"
)

func TestNewWithOutput_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "info", Environment: "production"}, &buf)

	log.WithField("cursor", 1000).Info("cycle finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cycle finished", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 1000, entry["cursor"])
}

func TestNewWithOutput_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "debug", Environment: "development"}, &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	buf.Reset()
	log.Info("hello")
	assert.True(t, strings.Contains(buf.String(), `msg=hello`), buf.String())
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "loud"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}
