package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-api-base-url public API base URL (token issuer)
//	-client-base-url public web client base URL
//	-app-name application display name
//	-email-token-lifespan confirmation/reset token lifespan (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-api-key mail provider API key
//	-mail-from-address sender address
//	-mail-from-name sender display name
//	-mail-base-url mail provider API root
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var apiBaseURL string
	var clientBaseURL string
	var appName string
	var emailTokenLifespan time.Duration
	var requestTimeout time.Duration
	var mailAPIKey string
	var mailFromAddress string
	var mailFromName string
	var mailBaseURL string

	fs := flag.NewFlagSet("go-auth-service", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&apiBaseURL, "api-base-url", "", "Public API base URL")
	fs.StringVar(&clientBaseURL, "client-base-url", "", "Public web client base URL")
	fs.StringVar(&appName, "app-name", "", "Application display name")
	fs.DurationVar(&emailTokenLifespan, "email-token-lifespan", 0, "Confirmation/reset token lifespan (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mailAPIKey, "mail-api-key", "", "Mail provider API key")
	fs.StringVar(&mailFromAddress, "mail-from-address", "", "Mail sender address")
	fs.StringVar(&mailFromName, "mail-from-name", "", "Mail sender name")
	fs.StringVar(&mailBaseURL, "mail-base-url", "", "Mail provider API base URL")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			APIBaseURL:         apiBaseURL,
			ClientBaseURL:      clientBaseURL,
			Name:               appName,
			EmailTokenLifespan: emailTokenLifespan,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Mail: Mail{
				APIKey:      mailAPIKey,
				FromAddress: mailFromAddress,
				FromName:    mailFromName,
				BaseURL:     mailBaseURL,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
