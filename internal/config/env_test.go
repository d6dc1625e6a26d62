// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvKeys = []string{
	"CONFIG",

	"PROFILE_DIR",
	"PROFILE_NICK",
	"PROFILE_COLOR",

	"STORAGE_DB_DATABASE_URI",
	"STORAGE_BUNDLES_DIR",

	"TRANSPORT_HUB_ADDRESS",
	"TRANSPORT_SESSION_ID",
	"TRANSPORT_SERVICE_NAME",
	"TRANSPORT_REQUEST_TIMEOUT",

	"ACTIVITY_MODE",
	"ACTIVITY_ANIMATION_INTERVAL",
	"ACTIVITY_WAIT_TIMEOUT",
	"ACTIVITY_ROSTER_WIDTH",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"PROFILE_DIR":   "/home/alice/.sugar/default",
		"PROFILE_NICK":  "Alice",
		"PROFILE_COLOR": "#FF0000,#0000FF",

		"STORAGE_DB_DATABASE_URI": "/tmp/registry.db",
		"STORAGE_BUNDLES_DIR":     "/home/alice/Activities",

		"TRANSPORT_HUB_ADDRESS":     "localhost:9000",
		"TRANSPORT_SESSION_ID":      "classroom",
		"TRANSPORT_SERVICE_NAME":    "org.example.Favorites",
		"TRANSPORT_REQUEST_TIMEOUT": "5s",

		"ACTIVITY_MODE":               "join",
		"ACTIVITY_ANIMATION_INTERVAL": "250ms",
		"ACTIVITY_WAIT_TIMEOUT":       "1m",
		"ACTIVITY_ROSTER_WIDTH":       "7",

		"SERVER_ADDRESS":         "0.0.0.0:9000",
		"SERVER_REQUEST_TIMEOUT": "30s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/home/alice/.sugar/default", cfg.Profile.Dir)
	assert.Equal(t, "Alice", cfg.Profile.Nick)
	assert.Equal(t, "#FF0000,#0000FF", cfg.Profile.Color)

	assert.Equal(t, "/tmp/registry.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/alice/Activities", cfg.Storage.BundlesDir)

	assert.Equal(t, "localhost:9000", cfg.Transport.HubAddress)
	assert.Equal(t, "classroom", cfg.Transport.SessionID)
	assert.Equal(t, "org.example.Favorites", cfg.Transport.ServiceName)
	assert.Equal(t, 5*time.Second, cfg.Transport.RequestTimeout)

	assert.Equal(t, ModeJoin, cfg.Activity.Mode)
	assert.Equal(t, 250*time.Millisecond, cfg.Activity.AnimationInterval)
	assert.Equal(t, time.Minute, cfg.Activity.WaitTimeout)
	assert.Equal(t, 7, cfg.Activity.RosterWidth)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ACTIVITY_WAIT_TIMEOUT": "forever"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range allEnvKeys {
		// t.Setenv restores the original value on cleanup.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
