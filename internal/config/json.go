package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		APIBaseURL         string   `json:"api_base_url"`
		ClientBaseURL      string   `json:"client_base_url"`
		Name               string   `json:"name"`
		EmailTokenLifespan Duration `json:"email_token_lifespan"`
		PasswordHashCost   int      `json:"password_hash_cost"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			APIKey         string   `json:"api_key"`
			FromAddress    string   `json:"from_address"`
			FromName       string   `json:"from_name"`
			BaseURL        string   `json:"base_url"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`
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
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			APIBaseURL:         jsonCfg.App.APIBaseURL,
			ClientBaseURL:      jsonCfg.App.ClientBaseURL,
			Name:               jsonCfg.App.Name,
			EmailTokenLifespan: time.Duration(jsonCfg.App.EmailTokenLifespan),
			PasswordHashCost:   jsonCfg.App.PasswordHashCost,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Mail: Mail{
				APIKey:         jsonCfg.Adapter.Mail.APIKey,
				FromAddress:    jsonCfg.Adapter.Mail.FromAddress,
				FromName:       jsonCfg.Adapter.Mail.FromName,
				BaseURL:        jsonCfg.Adapter.Mail.BaseURL,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Mail.RequestTimeout),
			},
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
