package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a tube hub listen address in format [host]:[port]
//	-hub tube hub address to connect to, [host]:[port]
//	-d bundle registry DSN (sqlite file)
//	-c/-config json file path with configs
//	-profile profile directory holding the favorites document
//	-nick nickname shown in the initiator's roster
//	-color stroke/fill color pair
//	-session shared session id
//	-service tube service name
//	-mode "share" or "join"
//	-animation-interval delay between revealed icons (e.g. "500ms")
//	-wait-timeout bounded wait for the snapshot, 0 waits forever
//	-roster-width participants per roster row
//	-request-timeout hub request timeout (e.g. "15s")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("share-favorites", flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var listenAddress, hubAddress NetAddress
	var databaseDSN, bundlesDir string
	var jsonConfigPath string
	var profileDir, nick, color string
	var sessionID, serviceName, mode string
	var animationInterval, waitTimeout, requestTimeout time.Duration
	var rosterWidth int

	fs.Var(&listenAddress, "a", "Tube hub listen address host:port")
	fs.Var(&hubAddress, "hub", "Tube hub address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Bundle registry DSN")
	fs.StringVar(&bundlesDir, "bundles", "", "Directory of installed bundles")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&profileDir, "profile", "", "Profile directory")
	fs.StringVar(&nick, "nick", "", "Nickname")
	fs.StringVar(&color, "color", "", "Color pair, e.g. #FF0000,#0000FF")
	fs.StringVar(&sessionID, "session", "", "Shared session id")
	fs.StringVar(&serviceName, "service", "", "Tube service name")
	fs.StringVar(&mode, "mode", "", "share or join")
	fs.DurationVar(&animationInterval, "animation-interval", 0, "Delay between revealed icons (e.g., 500ms)")
	fs.DurationVar(&waitTimeout, "wait-timeout", 0, "Bounded wait for the snapshot (0 waits forever)")
	fs.IntVar(&rosterWidth, "roster-width", 0, "Participants per roster row")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Profile: Profile{
			Dir:   profileDir,
			Nick:  nick,
			Color: color,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			BundlesDir: bundlesDir,
		},
		Transport: Transport{
			HubAddress:     hubAddress.String(),
			SessionID:      sessionID,
			ServiceName:    serviceName,
			RequestTimeout: requestTimeout,
		},
		Activity: Activity{
			Mode:              mode,
			AnimationInterval: animationInterval,
			WaitTimeout:       waitTimeout,
			RosterWidth:       rosterWidth,
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
