// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// participant and the tube hub binaries. It is populated by merging
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Profile describes the local user: profile directory, nickname and
	// colors sent to the initiator after a sync.
	Profile Profile `envPrefix:"PROFILE_"`

	// Storage holds the bundle registry database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Transport holds the tube hub address and the shared session to join.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Activity holds the sharing behaviour: role request, icon reveal
	// pacing and the optional bounded wait for a snapshot.
	Activity Activity `envPrefix:"ACTIVITY_"`

	// Server holds the tube hub listen settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Profile describes the local user.
type Profile struct {
	// Dir is the per-user profile directory holding the favorites document.
	// Env: PROFILE_DIR
	Dir string `env:"DIR"`

	// Nick is the nickname shown in the initiator's roster.
	// Env: PROFILE_NICK
	Nick string `env:"NICK"`

	// Color is the stroke/fill pair, e.g. "#FF0000,#0000FF".
	// Env: PROFILE_COLOR
	Color string `env:"COLOR"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the bundle registry database settings.
	DB DB `envPrefix:"DB_"`

	// BundlesDir holds the installed "*.activity" bundles registered at
	// startup. Empty keeps the registry as it is.
	// Env: STORAGE_BUNDLES_DIR
	BundlesDir string `env:"BUNDLES_DIR"`
}

// DB holds connection settings for the bundle registry.
type DB struct {
	// DSN is the SQLite file path of the bundle registry.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Transport holds the settings used to reach the tube hub.
type Transport struct {
	// HubAddress is the tube hub address in "host:port" format.
	// Env: TRANSPORT_HUB_ADDRESS
	HubAddress string `env:"HUB_ADDRESS"`

	// SessionID names the shared session on the hub.
	// Env: TRANSPORT_SESSION_ID
	SessionID string `env:"SESSION_ID"`

	// ServiceName tags the tube carrying the favorites protocol.
	// Env: TRANSPORT_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// RequestTimeout bounds every REST call to the hub.
	// Env: TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Activity holds the sharing behaviour settings.
type Activity struct {
	// Mode is "share" to originate the session or "join" to attach to it.
	// Env: ACTIVITY_MODE
	Mode string `env:"MODE"`

	// AnimationInterval is the delay between two revealed bundle icons.
	// Env: ACTIVITY_ANIMATION_INTERVAL
	AnimationInterval time.Duration `env:"ANIMATION_INTERVAL"`

	// WaitTimeout bounds how long a joiner waits for the snapshot.
	// Zero waits forever.
	// Env: ACTIVITY_WAIT_TIMEOUT
	WaitTimeout time.Duration `env:"WAIT_TIMEOUT"`

	// RosterWidth is the number of participants per roster row.
	// Env: ACTIVITY_ROSTER_WIDTH
	RosterWidth int `env:"ROSTER_WIDTH"`
}

// Server holds the tube hub listen settings.
type Server struct {
	// HTTPAddress is the TCP address the hub listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single REST request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Activity modes.
const (
	ModeShare = "share"
	ModeJoin  = "join"
)

// Defaults used for fields no source has set.
const (
	DefaultServiceName       = "org.sugarlabs.ShareFavorites"
	DefaultHubAddress        = "localhost:8080"
	DefaultAnimationInterval = 500 * time.Millisecond
	DefaultRequestTimeout    = 15 * time.Second
	DefaultRosterWidth       = 5
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Transport: Transport{
			HubAddress:     DefaultHubAddress,
			ServiceName:    DefaultServiceName,
			RequestTimeout: DefaultRequestTimeout,
		},
		Activity: Activity{
			AnimationInterval: DefaultAnimationInterval,
			RosterWidth:       DefaultRosterWidth,
		},
		Server: Server{
			HTTPAddress:    DefaultHubAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
