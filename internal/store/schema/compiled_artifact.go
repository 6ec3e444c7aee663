package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CompiledArtifact caches a successful compilation keyed by the hash of its canonical input
type CompiledArtifact struct {
	InputHash    string         `gorm:"primaryKey;type:text"`
	ContractName string         `gorm:"type:text;not null"`
	ABI          datatypes.JSON `gorm:"column:abi;type:jsonb;not null"`
	Bytecode     string         `gorm:"type:text;not null"`
	CreatedAt    time.Time      `gorm:"type:timestamptz;not null;default:now()"`
}

func (CompiledArtifact) TableName() string {
	return "compiled_artifacts"
}
