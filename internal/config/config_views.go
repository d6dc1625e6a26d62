package config

import (
	"fmt"
	"time"
)

// ClientConfig is the participant view of [StructuredConfig].
type ClientConfig struct {
	Profile   Profile
	Storage   Storage
	Transport Transport
	Activity  Activity
}

// HubConfig is the tube hub view of [StructuredConfig].
type HubConfig struct {
	Server Server
}

// GetClientConfig builds and validates the participant configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client()
}

// GetHubConfig builds and validates the tube hub configuration.
func GetHubConfig() (*HubConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Hub()
}

// Client maps cfg to a validated [ClientConfig].
func (cfg *StructuredConfig) Client() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Profile:   cfg.Profile,
		Storage:   cfg.Storage,
		Transport: cfg.Transport,
		Activity:  cfg.Activity,
	}

	return clientCfg, clientCfg.validate()
}

// Hub maps cfg to a validated [HubConfig].
func (cfg *StructuredConfig) Hub() (*HubConfig, error) {
	hubCfg := &HubConfig{Server: cfg.Server}

	return hubCfg, hubCfg.validate()
}

// HubURL returns the http base URL of the tube hub.
func (t Transport) HubURL() string {
	return "http://" + t.HubAddress
}

// StreamURL returns the websocket base URL of the tube hub.
func (t Transport) StreamURL() string {
	return "ws://" + t.HubAddress
}

// Timeout returns RequestTimeout or the default when unset.
func (t Transport) Timeout() time.Duration {
	if t.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return t.RequestTimeout
}
