// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsmaterial

import (
	"crypto/tls"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options carries TLS settings forwarded verbatim onto the built
// configuration. Field tags name the keys accepted by LoadOptions;
// zero values leave the corresponding config field untouched.
type Options struct {
	ServerName string   `yaml:"server_name"`
	MinVersion string   `yaml:"min_version"`
	MaxVersion string   `yaml:"max_version"`
	ClientAuth string   `yaml:"client_auth"`
	NextProtos []string `yaml:"next_protos"`
}

// LoadOptions reads TLS options from a YAML file.
func LoadOptions(name string) (*Options, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("tlsmaterial: reading options file %s: %w", name, err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("tlsmaterial: parsing options file %s: %w", name, err)
	}
	return &opts, nil
}

// apply copies the options onto cfg, translating symbolic version and
// client-auth names.
func (o *Options) apply(cfg *tls.Config) error {
	cfg.ServerName = o.ServerName
	cfg.NextProtos = o.NextProtos

	if o.MinVersion != "" {
		v, err := parseVersion(o.MinVersion)
		if err != nil {
			return err
		}
		cfg.MinVersion = v
	}
	if o.MaxVersion != "" {
		v, err := parseVersion(o.MaxVersion)
		if err != nil {
			return err
		}
		cfg.MaxVersion = v
	}
	if o.ClientAuth != "" {
		a, err := parseClientAuth(o.ClientAuth)
		if err != nil {
			return err
		}
		cfg.ClientAuth = a
	}
	return nil
}

// parseVersion maps a symbolic TLS version name to its constant.
func parseVersion(s string) (uint16, error) {
	switch s {
	case "1.0":
		return tls.VersionTLS10, nil
	case "1.1":
		return tls.VersionTLS11, nil
	case "1.2":
		return tls.VersionTLS12, nil
	case "1.3":
		return tls.VersionTLS13, nil
	default:
		return 0, fmt.Errorf("tlsmaterial: unknown TLS version %q", s)
	}
}

// parseClientAuth maps a symbolic client-auth policy name to its constant.
func parseClientAuth(s string) (tls.ClientAuthType, error) {
	switch s {
	case "none":
		return tls.NoClientCert, nil
	case "request":
		return tls.RequestClientCert, nil
	case "require-any":
		return tls.RequireAnyClientCert, nil
	case "verify-if-given":
		return tls.VerifyClientCertIfGiven, nil
	case "require-and-verify":
		return tls.RequireAndVerifyClientCert, nil
	default:
		return 0, fmt.Errorf("tlsmaterial: unknown client auth policy %q", s)
	}
}
