package schema

import "time"

// DeployedToken is the record written once per successful deployment
type DeployedToken struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	WalletAddress   string    `gorm:"type:text;not null;index"`
	TokenName       string    `gorm:"type:text;not null"`
	TokenSymbol     string    `gorm:"type:text;not null"`
	TokenSupply     string    `gorm:"type:text;not null"`
	ContractAddress string    `gorm:"type:text;not null;uniqueIndex"`
	ChainID         int64     `gorm:"type:bigint;not null"`
	DeployedAt      time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (DeployedToken) TableName() string {
	return "deployed_tokens"
}
