// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses configuration flags from args (without the program
// name). A fresh FlagSet is used on every call so parsing is repeatable.
//
// Flags:
//
//	-a listen address in format [host]:port (web client or API server)
//	-metrics-address metrics listen address in format [host]:port
//	-base-url notes API base URL
//	-target base URL preset: emulator, local, proxied
//	-request-timeout outbound request timeout (e.g. "10s"), 0 disables
//	-proxy-upstream notes API the web client's /api proxy forwards to
//	-log-file terminal client log file
//	-seed notes seed file loaded by the API server
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress, metricsAddress NetAddress
	var baseURL, target, proxyUpstream, logFile, seedFile, configPath string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.Var(&listenAddress, "a", "Listen address [host]:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listen address [host]:port")
	fs.StringVar(&baseURL, "base-url", "", "Notes API base URL")
	fs.StringVar(&target, "target", "", "Base URL preset: emulator, local, proxied")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s), 0 disables")
	fs.StringVar(&proxyUpstream, "proxy-upstream", "", "Upstream notes API for the /api proxy")
	fs.StringVar(&logFile, "log-file", "", "Terminal client log file")
	fs.StringVar(&seedFile, "seed", "", "Notes seed file (YAML or JSON)")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Target:         target,
			RequestTimeout: requestTimeout,
		},
		Web: Web{
			Address:       listenAddress.String(),
			ProxyUpstream: proxyUpstream,
		},
		Server: Server{
			Address:        listenAddress.String(),
			MetricsAddress: metricsAddress.String(),
			SeedFile:       seedFile,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. An empty host listens on all interfaces; otherwise
// the host must be "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
