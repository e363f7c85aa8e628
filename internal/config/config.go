package config

// ServerSection contains the inbound HTTP listener configuration.
type ServerSection struct {
	ListenAddr string `yaml:"listen_addr"`
}

// ApproverSection configures the signing identity of this service.
type ApproverSection struct {
	// PrivateKey is the approver's secp256k1 key as 0x-hex. Prefer the
	// SIGNET_APPROVER_KEY environment variable so key material stays out of
	// config files; the env value overrides this field when set.
	PrivateKey string `yaml:"private_key"`

	// Resolver is the resolver identifier embedded in approval messages,
	// e.g. a contract address.
	Resolver string `yaml:"resolver"`

	// ChainID is the EIP-155 chain the resolver lives on (1 for mainnet).
	ChainID uint64 `yaml:"chain_id"`
}

// StoreSection configures the durable key/value store.
type StoreSection struct {
	Path string `yaml:"path"`
}

// GatewaySection configures outbound declaration fetches.
type GatewaySection struct {
	// FetchTimeout bounds a declaration fetch when the caller supplies no
	// deadline. Go duration format: "5s", "30s", "1m". Defaults to 10s.
	FetchTimeout string `yaml:"fetch_timeout"`
}

// FileConfig represents a signetd configuration file.
//
// The config format is versioned to support future evolution without
// breaking changes.
type FileConfig struct {
	// Version is the config file format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	Server   ServerSection   `yaml:"server"`
	Approver ApproverSection `yaml:"approver"`
	Store    StoreSection    `yaml:"store"`
	Gateway  GatewaySection  `yaml:"gateway"`
}
