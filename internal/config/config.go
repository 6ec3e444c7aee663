package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host               string   `mapstructure:"host"`
	Port               int      `mapstructure:"port"`
	ReadTimeout        int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout       int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout        int      `mapstructure:"idle_timeout"`  // in seconds
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// CompilerConfig holds solc configuration
type CompilerConfig struct {
	SolcPath     string `mapstructure:"solc_path"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
}

// WalletConfig holds the wallet provider endpoint
type WalletConfig struct {
	RPCURL       string        `mapstructure:"rpc_url"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// BackendConfig holds the token deployer API endpoint used by the CLI
type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Compiler   CompilerConfig `mapstructure:"compiler"`
}

// DeployerConfig holds configuration for the deployer CLI
type DeployerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Wallet     WalletConfig       `mapstructure:"wallet"`
	Backend    BackendConfig      `mapstructure:"backend"`
	Chain      domain.ChainConfig `mapstructure:"chain"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60) // compilation can take a while
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("compiler.solc_path", "solc")
	v.SetDefault("compiler.cache_enabled", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadDeployerConfig loads configuration for the deployer CLI
func LoadDeployerConfig(configFile string, envPath string) (*DeployerConfig, error) {
	v := configureViper("deployer", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("wallet.rpc_url", "http://127.0.0.1:1248")
	v.SetDefault("wallet.poll_interval", "2s")
	v.SetDefault("backend.url", "http://localhost:8080")
	v.SetDefault("backend.timeout", "60s")
	v.SetDefault("chain.chain_id", domain.MonadTestnet.ChainID)
	v.SetDefault("chain.chain_name", domain.MonadTestnet.ChainName)
	v.SetDefault("chain.rpc_urls", domain.MonadTestnet.RPCURLs)
	v.SetDefault("chain.native_currency.name", domain.MonadTestnet.NativeCurrency.Name)
	v.SetDefault("chain.native_currency.symbol", domain.MonadTestnet.NativeCurrency.Symbol)
	v.SetDefault("chain.native_currency.decimals", domain.MonadTestnet.NativeCurrency.Decimals)
	v.SetDefault("chain.block_explorer_urls", domain.MonadTestnet.BlockExplorerURLs)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg DeployerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Chain.ChainID <= 0 {
		return nil, errors.New("chain.chain_id must be positive")
	}
	if len(cfg.Chain.RPCURLs) == 0 {
		return nil, errors.New("chain.rpc_urls is required")
	}

	return &cfg, nil
}

// readConfig reads the config file; a missing file falls back to defaults and environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/deployer/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("TOKEN_DEPLOYER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Compiler
		"compiler.solc_path",
		"compiler.cache_enabled",
		// Wallet
		"wallet.rpc_url",
		"wallet.poll_interval",
		// Backend
		"backend.url",
		"backend.timeout",
		// Chain
		"chain.chain_id",
		"chain.chain_name",
		"chain.rpc_urls",
		"chain.native_currency.name",
		"chain.native_currency.symbol",
		"chain.native_currency.decimals",
		"chain.block_explorer_urls",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
