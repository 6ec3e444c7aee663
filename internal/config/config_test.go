package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-deployer/internal/domain"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
  write_timeout: 90
  idle_timeout: 30
  cors_allowed_origins:
    - "https://deployer.example.com"
    - "http://localhost:3000"
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
  max_open_conns: 20
  max_idle_conns: 5
  conn_max_lifetime: "1h"
  conn_max_idle_time: "10m"
compiler:
  solc_path: /usr/local/bin/solc
  cache_enabled: false
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, 90, cfg.Server.WriteTimeout)
				assert.Equal(t, 30, cfg.Server.IdleTimeout)
				assert.Equal(t, []string{"https://deployer.example.com", "http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.MaxOpenConns)
				assert.Equal(t, 5, cfg.Database.MaxIdleConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxIdleTime)
				assert.Equal(t, "/usr/local/bin/solc", cfg.Compiler.SolcPath)
				assert.False(t, cfg.Compiler.CacheEnabled)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 60, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Empty(t, cfg.Server.CORSAllowedOrigins)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "solc", cfg.Compiler.SolcPath)
				assert.True(t, cfg.Compiler.CacheEnabled)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid port type",
			configFile: `
server:
  port: not-a-number
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadDeployerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *DeployerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
wallet:
  rpc_url: "http://127.0.0.1:8545"
  poll_interval: "500ms"
backend:
  url: "https://deployer-api.example.com"
  timeout: "15s"
chain:
  chain_id: 31337
  chain_name: "Local"
  rpc_urls:
    - "http://127.0.0.1:8545"
  native_currency:
    name: "Ether"
    symbol: "ETH"
    decimals: 18
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DeployerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "http://127.0.0.1:8545", cfg.Wallet.RPCURL)
				assert.Equal(t, 500*time.Millisecond, cfg.Wallet.PollInterval)
				assert.Equal(t, "https://deployer-api.example.com", cfg.Backend.URL)
				assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
				assert.Equal(t, int64(31337), cfg.Chain.ChainID)
				assert.Equal(t, "Local", cfg.Chain.ChainName)
				assert.Equal(t, []string{"http://127.0.0.1:8545"}, cfg.Chain.RPCURLs)
				assert.Equal(t, "ETH", cfg.Chain.NativeCurrency.Symbol)
				assert.Equal(t, 18, cfg.Chain.NativeCurrency.Decimals)
				assert.Equal(t, "0x7a69", cfg.Chain.HexChainID())
			},
		},
		{
			name: "config with defaults",
			configFile: `
debug: false
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DeployerConfig) {
				assert.Equal(t, "http://127.0.0.1:1248", cfg.Wallet.RPCURL)
				assert.Equal(t, 2*time.Second, cfg.Wallet.PollInterval)
				assert.Equal(t, "http://localhost:8080", cfg.Backend.URL)
				assert.Equal(t, 60*time.Second, cfg.Backend.Timeout)
				assert.Equal(t, domain.MonadTestnet, cfg.Chain)
				assert.Equal(t, "0x279f", cfg.Chain.HexChainID())
			},
		},
		{
			name: "zero chain id",
			configFile: `
chain:
  chain_id: 0
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid poll interval",
			configFile: `
wallet:
  poll_interval: "soon"
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadDeployerConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv.Overload writes into the process environment
	vars := []string{
		"TOKEN_DEPLOYER_DEBUG",
		"TOKEN_DEPLOYER_DATABASE_HOST",
		"TOKEN_DEPLOYER_DATABASE_PORT",
		"TOKEN_DEPLOYER_COMPILER_SOLC_PATH",
		"TOKEN_DEPLOYER_CHAIN_CHAIN_ID",
		"TOKEN_DEPLOYER_BACKEND_URL",
	}
	t.Cleanup(func() {
		for _, v := range vars {
			_ = os.Unsetenv(v)
		}
	})

	envContent := `TOKEN_DEPLOYER_DEBUG=true
TOKEN_DEPLOYER_DATABASE_HOST=env-host
TOKEN_DEPLOYER_DATABASE_PORT=6543
TOKEN_DEPLOYER_COMPILER_SOLC_PATH=/opt/solc
`
	err = os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600)
	require.NoError(t, err)

	// Per-service local file is loaded last and wins
	deployerEnv := `TOKEN_DEPLOYER_CHAIN_CHAIN_ID=31337
TOKEN_DEPLOYER_BACKEND_URL=http://backend.internal:8080
`
	err = os.WriteFile(filepath.Join(envDir, ".env.deployer.local"), []byte(deployerEnv), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
compiler:
  solc_path: solc
backend:
  url: http://file-backend:8080
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	apiCfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	assert.True(t, apiCfg.Debug)
	assert.Equal(t, "env-host", apiCfg.Database.Host)
	assert.Equal(t, 6543, apiCfg.Database.Port)
	assert.Equal(t, "/opt/solc", apiCfg.Compiler.SolcPath)

	deployerCfg, err := LoadDeployerConfig(configPath, envDir)
	require.NoError(t, err)
	assert.Equal(t, int64(31337), deployerCfg.Chain.ChainID)
	assert.Equal(t, "http://backend.internal:8080", deployerCfg.Backend.URL)
	assert.Equal(t, domain.MonadTestnet.RPCURLs, deployerCfg.Chain.RPCURLs)
}
