package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		TokenCookieName      string   `json:"token_cookie_name"`
		RequireTokenOnRemove bool     `json:"require_token_on_remove"`
		LogLevel             string   `json:"log_level"`

		PasswordHashing struct {
			Memory      uint32 `json:"memory"`
			Iterations  uint32 `json:"iterations"`
			Parallelism uint8  `json:"parallelism"`
			SaltLength  uint32 `json:"salt_length"`
			KeyLength   uint32 `json:"key_length"`
		} `json:"password_hashing,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		GRPCAddress       string   `json:"grpc_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		AllowedOrigins    []string `json:"allowed_origins"`
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

	hashing := jsonCfg.App.PasswordHashing
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			TokenCookieName:      jsonCfg.App.TokenCookieName,
			RequireTokenOnRemove: jsonCfg.App.RequireTokenOnRemove,
			LogLevel:             jsonCfg.App.LogLevel,
			PasswordHashing: PasswordHashing{
				Memory:      hashing.Memory,
				Iterations:  hashing.Iterations,
				Parallelism: hashing.Parallelism,
				SaltLength:  hashing.SaltLength,
				KeyLength:   hashing.KeyLength,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			GRPCAddress:       jsonCfg.Server.GRPCAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:    jsonCfg.Server.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
