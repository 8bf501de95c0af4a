package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Payments struct {
		StripeSecretKey string `json:"stripe_secret_key"`
	} `json:"payments,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			MinConns       int      `json:"min_conns"`
			MaxConns       int      `json:"max_conns"`
			AcquireTimeout Duration `json:"acquire_timeout"`
			QueryTimeout   Duration `json:"query_timeout"`
		} `json:"db,omitempty"`

		Files struct {
			UploadDir      string `json:"upload_dir"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Port           int      `json:"port"`
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
		Payments: Payments{
			StripeSecretKey: jsonCfg.Payments.StripeSecretKey,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				MinConns:       jsonCfg.Storage.DB.MinConns,
				MaxConns:       jsonCfg.Storage.DB.MaxConns,
				AcquireTimeout: time.Duration(jsonCfg.Storage.DB.AcquireTimeout),
				QueryTimeout:   time.Duration(jsonCfg.Storage.DB.QueryTimeout),
			},
			Files: Files{
				UploadDir:      jsonCfg.Storage.Files.UploadDir,
				MaxUploadBytes: jsonCfg.Storage.Files.MaxUploadBytes,
			},
		},
		Server: Server{
			Port:           jsonCfg.Server.Port,
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
