// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// validate checks the invariants shared by every view of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Activity.Mode != "" && cfg.Activity.Mode != ModeShare && cfg.Activity.Mode != ModeJoin {
		return ErrInvalidActivityConfigs
	}
	if cfg.Activity.WaitTimeout < 0 || cfg.Activity.AnimationInterval < 0 || cfg.Activity.RosterWidth < 0 {
		return ErrInvalidActivityConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Profile.Dir == "" || cfg.Profile.Nick == "" || cfg.Profile.Color == "" {
		return ErrInvalidProfileConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Transport.HubAddress == "" || cfg.Transport.SessionID == "" || cfg.Transport.ServiceName == "" {
		return ErrInvalidTransportConfigs
	}

	if cfg.Activity.Mode != ModeShare && cfg.Activity.Mode != ModeJoin {
		return ErrInvalidActivityConfigs
	}
	if cfg.Activity.AnimationInterval <= 0 || cfg.Activity.WaitTimeout < 0 {
		return ErrInvalidActivityConfigs
	}

	return nil
}

func (cfg *HubConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < time.Millisecond {
		return ErrInvalidServerConfigs
	}

	return nil
}
