package config

import (
	"fmt"
	"time"
)

// Defaults applied by Validate when the corresponding field is unset.
const (
	DefaultListenAddr   = ":8080"
	DefaultStorePath    = "signet.db"
	DefaultFetchTimeout = 10 * time.Second
)

// Config is the validated runtime configuration handed to the composition
// root. Unlike FileConfig it carries parsed types and has all defaults
// resolved.
type Config struct {
	ListenAddr   string
	PrivateKey   string
	Resolver     string
	ChainID      uint64
	StorePath    string
	FetchTimeout time.Duration
}

// Validate checks cfg and resolves it into a runtime Config.
//
// The approver key, resolver, and chain id have no sane defaults: their
// absence is a fatal configuration error surfaced here, at startup, never
// per request.
func Validate(cfg FileConfig) (Config, error) {
	out := Config{
		ListenAddr:   cfg.Server.ListenAddr,
		PrivateKey:   cfg.Approver.PrivateKey,
		Resolver:     cfg.Approver.Resolver,
		ChainID:      cfg.Approver.ChainID,
		StorePath:    cfg.Store.Path,
		FetchTimeout: DefaultFetchTimeout,
	}

	if out.PrivateKey == "" {
		return Config{}, fmt.Errorf("approver private key is required (set SIGNET_APPROVER_KEY or approver.private_key)")
	}
	if out.Resolver == "" {
		return Config{}, fmt.Errorf("approver.resolver is required")
	}
	if out.ChainID == 0 {
		return Config{}, fmt.Errorf("approver.chain_id is required")
	}

	if out.ListenAddr == "" {
		out.ListenAddr = DefaultListenAddr
	}
	if out.StorePath == "" {
		out.StorePath = DefaultStorePath
	}
	if cfg.Gateway.FetchTimeout != "" {
		d, err := time.ParseDuration(cfg.Gateway.FetchTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid gateway.fetch_timeout %q: %w", cfg.Gateway.FetchTimeout, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("gateway.fetch_timeout must be positive, got %q", cfg.Gateway.FetchTimeout)
		}
		out.FetchTimeout = d
	}

	return out, nil
}
