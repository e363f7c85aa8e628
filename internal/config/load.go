package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load parses the signetd configuration file at path. The path comes from
// the -config flag, so it is operator-supplied and trusted; it is still
// cleaned before the read.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 - operator-supplied path
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg. Set values win over the
// file so secrets and per-deployment settings never need to live on disk.
//
//	SIGNET_APPROVER_KEY   approver private key (0x-hex)
//	SIGNET_RESOLVER       resolver identifier
//	SIGNET_CHAIN_ID       EIP-155 chain id (decimal)
//	SIGNET_LISTEN_ADDR    HTTP listen address
//	SIGNET_STORE_PATH     key/value store file path
//	SIGNET_FETCH_TIMEOUT  declaration fetch timeout (Go duration)
func ApplyEnv(cfg *FileConfig) error {
	if v := os.Getenv("SIGNET_APPROVER_KEY"); v != "" {
		cfg.Approver.PrivateKey = v
	}
	if v := os.Getenv("SIGNET_RESOLVER"); v != "" {
		cfg.Approver.Resolver = v
	}
	if v := os.Getenv("SIGNET_CHAIN_ID"); v != "" {
		chainID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SIGNET_CHAIN_ID %q: %w", v, err)
		}
		cfg.Approver.ChainID = chainID
	}
	if v := os.Getenv("SIGNET_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("SIGNET_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("SIGNET_FETCH_TIMEOUT"); v != "" {
		cfg.Gateway.FetchTimeout = v
	}
	return nil
}
