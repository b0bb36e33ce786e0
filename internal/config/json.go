package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Runner struct {
		ConfigDir     string   `json:"config_dir"`
		Tolerance     Duration `json:"tolerance"`
		MaxRetries    int      `json:"max_retries"`
		RetryDelay    Duration `json:"retry_delay"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"runner,omitempty"`

	Dispatch struct {
		Timeout Duration `json:"timeout"`
	} `json:"dispatch,omitempty"`

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
		Runner: Runner{
			ConfigDir:     jsonCfg.Runner.ConfigDir,
			Tolerance:     time.Duration(jsonCfg.Runner.Tolerance),
			MaxRetries:    jsonCfg.Runner.MaxRetries,
			RetryDelay:    time.Duration(jsonCfg.Runner.RetryDelay),
			SweepInterval: time.Duration(jsonCfg.Runner.SweepInterval),
		},
		Dispatch: Dispatch{
			Timeout: time.Duration(jsonCfg.Dispatch.Timeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
