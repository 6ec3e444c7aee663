package compiler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// SourceFileName is the name under which the source is handed to the compiler
const SourceFileName = "contract.sol"

// ErrCompilerUnavailable is returned when the compiler binary cannot be run
var ErrCompilerUnavailable = fmt.Errorf("%w: compiler unavailable", domain.ErrTransport)

// Artifact is the result of a successful compilation
type Artifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode string          `json:"bytecode"`
}

// Entries decodes the ABI into its entries
func (a *Artifact) Entries() ([]contract.ABIEntry, error) {
	return contract.ParseABI(a.ABI)
}

// Compiler turns a source text into an artifact for the named compile unit
//
//go:generate mockgen -source=compiler.go -destination=../mocks/compiler.go -package=mocks -mock_names=Compiler=MockCompiler
type Compiler interface {
	// Compile compiles source and returns the artifact of unitName.
	// Error diagnostics are returned as *domain.CompilationError.
	Compile(ctx context.Context, source, unitName string) (*Artifact, error)
}
