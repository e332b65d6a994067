package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress        = "localhost:8080"
	defaultRequestTimeout     = 30 * time.Second
	defaultEmailTokenLifespan = 24 * time.Hour
	defaultAppName            = "Auth Service"
	defaultMailBaseURL        = "https://api.sendgrid.com"
	defaultMailRequestTimeout = 10 * time.Second
)

// defaultConfig returns the values used for every field left empty by the
// other sources. Secrets, URLs and credentials have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:               defaultAppName,
			EmailTokenLifespan: defaultEmailTokenLifespan,
			PasswordHashCost:   bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Mail: Mail{
				BaseURL:        defaultMailBaseURL,
				RequestTimeout: defaultMailRequestTimeout,
			},
		},
	}
}
