// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file, shared by
// the JSON and YAML formats.
type StructuredFileConfig struct {
	App struct {
		LogFile string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		Target         string   `json:"target" yaml:"target"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Web struct {
		Address       string `json:"address" yaml:"address"`
		ProxyUpstream string `json:"proxy_upstream" yaml:"proxy_upstream"`
	} `json:"web,omitempty" yaml:"web,omitempty"`

	Server struct {
		Address        string `json:"address" yaml:"address"`
		MetricsAddress string `json:"metrics_address" yaml:"metrics_address"`
	} `json:"server,omitempty" yaml:"server,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.NewDecoder(f).Decode(&fileCfg)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&fileCfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: fileCfg.App.LogFile,
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			Target:         fileCfg.Adapter.Target,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Web: Web{
			Address:       fileCfg.Web.Address,
			ProxyUpstream: fileCfg.Web.ProxyUpstream,
		},
		Server: Server{
			Address:        fileCfg.Server.Address,
			MetricsAddress: fileCfg.Server.MetricsAddress,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h", "30s" as well as from plain nanosecond numbers.
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
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
