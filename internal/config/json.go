package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Profile struct {
		Dir   string `json:"dir"`
		Nick  string `json:"nick"`
		Color string `json:"color"`
	} `json:"profile,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		BundlesDir string `json:"bundles_dir"`
	} `json:"storage,omitempty"`

	Transport struct {
		HubAddress     string   `json:"hub_address"`
		SessionID      string   `json:"session_id"`
		ServiceName    string   `json:"service_name"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"transport,omitempty"`

	Activity struct {
		Mode              string   `json:"mode"`
		AnimationInterval Duration `json:"animation_interval"`
		WaitTimeout       Duration `json:"wait_timeout"`
		RosterWidth       int      `json:"roster_width"`
	} `json:"activity,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Profile: Profile{
			Dir:   jsonCfg.Profile.Dir,
			Nick:  jsonCfg.Profile.Nick,
			Color: jsonCfg.Profile.Color,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			BundlesDir: jsonCfg.Storage.BundlesDir,
		},
		Transport: Transport{
			HubAddress:     jsonCfg.Transport.HubAddress,
			SessionID:      jsonCfg.Transport.SessionID,
			ServiceName:    jsonCfg.Transport.ServiceName,
			RequestTimeout: time.Duration(jsonCfg.Transport.RequestTimeout),
		},
		Activity: Activity{
			Mode:              jsonCfg.Activity.Mode,
			AnimationInterval: time.Duration(jsonCfg.Activity.AnimationInterval),
			WaitTimeout:       time.Duration(jsonCfg.Activity.WaitTimeout),
			RosterWidth:       jsonCfg.Activity.RosterWidth,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "500ms" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
