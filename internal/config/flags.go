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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-dir task config directory
//	-tolerance trigger window width (e.g., "30m")
//	-max-retries dispatch attempts per task
//	-retry-delay pause between dispatch attempts (e.g., "2s")
//	-dispatch-timeout outbound request timeout (e.g., "20s")
//	-sweep-interval background sweep interval, 0 disables (e.g., "1m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var configDir string
	var tolerance time.Duration
	var maxRetries int
	var retryDelay time.Duration
	var dispatchTimeout time.Duration
	var sweepInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&configDir, "dir", "", "Task config directory")
	flag.DurationVar(&tolerance, "tolerance", 0, "Trigger window width (e.g., 30m)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Dispatch attempts per task")
	flag.DurationVar(&retryDelay, "retry-delay", 0, "Pause between dispatch attempts (e.g., 2s)")
	flag.DurationVar(&dispatchTimeout, "dispatch-timeout", 0, "Outbound request timeout (e.g., 20s)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Background sweep interval, 0 disables (e.g., 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Runner: Runner{
			ConfigDir:     configDir,
			Tolerance:     tolerance,
			MaxRetries:    maxRetries,
			RetryDelay:    retryDelay,
			SweepInterval: sweepInterval,
		},
		Dispatch: Dispatch{
			Timeout: dispatchTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
