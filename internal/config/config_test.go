package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/signet/internal/config"
)

const sampleConfig = `version: 1
server:
  listen_addr: ":9090"
approver:
  resolver: "0x1234resolver"
  chain_id: 11155111
store:
  path: /var/lib/signet/signet.db
gateway:
  fetch_timeout: 5s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "0x1234resolver", cfg.Approver.Resolver)
	assert.Equal(t, uint64(11155111), cfg.Approver.ChainID)
	assert.Equal(t, "/var/lib/signet/signet.db", cfg.Store.Path)
	assert.Equal(t, "5s", cfg.Gateway.FetchTimeout)
	assert.Empty(t, cfg.Approver.PrivateKey)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_BadYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "{not yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	t.Setenv("SIGNET_APPROVER_KEY", "0xdeadbeef")
	t.Setenv("SIGNET_RESOLVER", "0xenvresolver")
	t.Setenv("SIGNET_CHAIN_ID", "1")
	t.Setenv("SIGNET_LISTEN_ADDR", ":7070")
	t.Setenv("SIGNET_STORE_PATH", "env.db")
	t.Setenv("SIGNET_FETCH_TIMEOUT", "3s")

	require.NoError(t, config.ApplyEnv(&cfg))
	assert.Equal(t, "0xdeadbeef", cfg.Approver.PrivateKey)
	assert.Equal(t, "0xenvresolver", cfg.Approver.Resolver)
	assert.Equal(t, uint64(1), cfg.Approver.ChainID)
	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
	assert.Equal(t, "env.db", cfg.Store.Path)
	assert.Equal(t, "3s", cfg.Gateway.FetchTimeout)
}

func TestApplyEnv_BadChainID(t *testing.T) {
	var cfg config.FileConfig
	t.Setenv("SIGNET_CHAIN_ID", "mainnet")

	err := config.ApplyEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIGNET_CHAIN_ID")
}

func validFileConfig() config.FileConfig {
	return config.FileConfig{
		Approver: config.ApproverSection{
			PrivateKey: "0xkey",
			Resolver:   "0x1234resolver",
			ChainID:    1,
		},
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Validate(validFileConfig())
	require.NoError(t, err)

	assert.Equal(t, config.DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, config.DefaultStorePath, cfg.StorePath)
	assert.Equal(t, config.DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, "0xkey", cfg.PrivateKey)
}

func TestValidate_ParsesTimeout(t *testing.T) {
	t.Parallel()

	fileCfg := validFileConfig()
	fileCfg.Gateway.FetchTimeout = "30s"
	cfg, err := config.Validate(fileCfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	missingKey := validFileConfig()
	missingKey.Approver.PrivateKey = ""
	_, err := config.Validate(missingKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private key")

	missingResolver := validFileConfig()
	missingResolver.Approver.Resolver = ""
	_, err = config.Validate(missingResolver)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolver")

	missingChain := validFileConfig()
	missingChain.Approver.ChainID = 0
	_, err = config.Validate(missingChain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain_id")
}

func TestValidate_BadTimeout(t *testing.T) {
	t.Parallel()

	fileCfg := validFileConfig()
	fileCfg.Gateway.FetchTimeout = "soon"
	_, err := config.Validate(fileCfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch_timeout")

	fileCfg.Gateway.FetchTimeout = "-5s"
	_, err = config.Validate(fileCfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}
