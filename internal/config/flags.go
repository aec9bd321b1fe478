package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number must be between 1 and 65535")
	errAddressHost   = errors.New("incorrect IP-address provided")
)

// NetAddress is a listen address given on the command line.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// originList collects CORS origins from a comma separated flag value.
type originList []string

func (o *originList) String() string { return strings.Join(*o, ",") }

func (o *originList) Set(s string) error {
	for origin := range strings.SplitSeq(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a                       listen address [host]:port
//	-g                       gRPC health listen address [host]:port
//	-d                       database DSN
//	-driver                  database driver (pgx or sqlite3)
//	-c, -config              JSON config file
//	-token-sign-key          token signing key
//	-token-issuer            token issuer
//	-token-duration          token lifetime, e.g. "168h"
//	-cookie-name             name of the token cookie
//	-require-token-on-remove require the owner's token to delete an account
//	-request-timeout         per-request timeout, e.g. "30s"
//	-shutdown-timeout        graceful shutdown timeout
//	-allowed-origins         comma separated CORS origins
//	-log-level               debug, info, warn, error
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		listenAddress   NetAddress
		grpcAddress     NetAddress
		allowedOrigins  originList
		jsonConfigPath  string
		cfg             StructuredConfig
		requireOnRemove bool
	)

	fs := flag.NewFlagSet("user-accounts", flag.ContinueOnError)
	fs.Var(&listenAddress, "a", "Listen address [host]:port")
	fs.Var(&grpcAddress, "g", "gRPC health listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime (e.g., 168h)")
	fs.StringVar(&cfg.App.TokenCookieName, "cookie-name", "", "Token cookie name")
	fs.BoolVar(&requireOnRemove, "require-token-on-remove", false, "Require the owner's token to delete an account")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.Var(&allowedOrigins, "allowed-origins", "Comma separated CORS origins")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.App.RequireTokenOnRemove = requireOnRemove
	cfg.Server.HTTPAddress = listenAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Server.AllowedOrigins = allowedOrigins
	cfg.JSONFilePath = jsonConfigPath

	return &cfg, nil
}

// String returns the host:port form, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. An empty host means all interfaces; any other host
// must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host = host
	a.Port = port
	return nil
}
