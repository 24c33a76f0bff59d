package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses client configuration flags from args.
//
// Flags:
//
//	-a feed server address in format [host]:[port]
//	-url feed server base URL (overrides -a)
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s")
//	-poll-interval poll fallback interval (e.g., "20s")
//	-reconnect-delay push channel reconnect delay (e.g., "5s")
//	-limit first page size for silent refreshes
//	-no-notify disable desktop notifications
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("feed-client", flag.ContinueOnError)

	var serverAddress NetAddress
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var reconnectDelay time.Duration
	var pageLimit int
	var noNotify bool

	fs.Var(&serverAddress, "a", "Feed server address host:port")
	fs.StringVar(&serverURL, "url", "", "Feed server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Poll fallback interval (e.g., 20s)")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Push reconnect delay (e.g., 5s)")
	fs.IntVar(&pageLimit, "limit", 0, "First page size for silent refreshes")
	fs.BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	address := serverAddress.String()
	if serverURL != "" {
		address = serverURL
	}

	return &StructuredConfig{
		App: App{
			PageLimit:            pageLimit,
			DisableNotifications: noNotify,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval:   pollInterval,
			ReconnectDelay: reconnectDelay,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
