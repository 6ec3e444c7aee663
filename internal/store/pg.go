package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateDeployedToken inserts a deployment record
func (s *pgStore) CreateDeployedToken(ctx context.Context, input CreateDeployedTokenInput) (*schema.DeployedToken, error) {
	token := schema.DeployedToken{
		WalletAddress:   domain.NormalizeWalletAddress(input.WalletAddress),
		TokenName:       input.TokenName,
		TokenSymbol:     input.TokenSymbol,
		TokenSupply:     input.TokenSupply,
		ContractAddress: input.ContractAddress,
		ChainID:         input.ChainID,
	}

	// deployed_at is left to the column default and read back
	if err := s.db.WithContext(ctx).
		Omit("DeployedAt").
		Clauses(clause.Returning{}).
		Create(&token).Error; err != nil {
		return nil, fmt.Errorf("failed to create deployed token: %w", err)
	}

	return &token, nil
}

// ListDeployedTokensByWallet returns the wallet's records ordered by id
func (s *pgStore) ListDeployedTokensByWallet(ctx context.Context, walletAddress string) ([]schema.DeployedToken, error) {
	tokens := []schema.DeployedToken{}
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", domain.NormalizeWalletAddress(walletAddress)).
		Order("id ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deployed tokens: %w", err)
	}

	return tokens, nil
}

// GetCompiledArtifact retrieves a cached compilation by input hash
func (s *pgStore) GetCompiledArtifact(ctx context.Context, inputHash string) (*schema.CompiledArtifact, error) {
	var artifact schema.CompiledArtifact
	err := s.db.WithContext(ctx).Where("input_hash = ?", inputHash).First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get compiled artifact: %w", err)
	}

	return &artifact, nil
}

// SaveCompiledArtifact caches a compilation result
func (s *pgStore) SaveCompiledArtifact(ctx context.Context, input SaveCompiledArtifactInput) error {
	artifact := schema.CompiledArtifact{
		InputHash:    input.InputHash,
		ContractName: input.ContractName,
		ABI:          datatypes.JSON(input.ABI),
		Bytecode:     input.Bytecode,
	}

	err := s.db.WithContext(ctx).
		Omit("CreatedAt").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "input_hash"}},
			DoNothing: true,
		}).
		Create(&artifact).Error
	if err != nil {
		return fmt.Errorf("failed to save compiled artifact: %w", err)
	}

	return nil
}
