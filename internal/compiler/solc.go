package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/logger"
)

// DefaultSolcPath is the solc binary looked up on PATH when none is configured
const DefaultSolcPath = "solc"

type standardInput struct {
	Language string                    `json:"language"`
	Sources  map[string]standardSource `json:"sources"`
	Settings standardSettings          `json:"settings"`
}

type standardSource struct {
	Content string `json:"content"`
}

type standardSettings struct {
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type standardOutput struct {
	Errors    []diagnostic                         `json:"errors"`
	Contracts map[string]map[string]contractOutput `json:"contracts"`
}

type diagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type contractOutput struct {
	ABI json.RawMessage `json:"abi"`
	EVM struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// newStandardInput builds the solc standard-JSON input for a single source file
func newStandardInput(source string) standardInput {
	return standardInput{
		Language: "Solidity",
		Sources: map[string]standardSource{
			SourceFileName: {Content: source},
		},
		Settings: standardSettings{
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"abi", "evm.bytecode"}},
			},
		},
	}
}

// SolcCompiler compiles through the solc binary in standard-JSON mode
type SolcCompiler struct {
	runner   adapter.CommandRunner
	solcPath string
}

// NewSolcCompiler creates a compiler running solcPath (DefaultSolcPath when empty)
func NewSolcCompiler(runner adapter.CommandRunner, solcPath string) *SolcCompiler {
	if solcPath == "" {
		solcPath = DefaultSolcPath
	}
	return &SolcCompiler{runner: runner, solcPath: solcPath}
}

// Available reports whether the solc binary can be found
func (c *SolcCompiler) Available() error {
	if _, err := c.runner.LookPath(c.solcPath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCompilerUnavailable, c.solcPath, err)
	}
	return nil
}

// Compile compiles source and extracts unitName from the output
func (c *SolcCompiler) Compile(ctx context.Context, source, unitName string) (*Artifact, error) {
	input, err := json.Marshal(newStandardInput(source))
	if err != nil {
		return nil, fmt.Errorf("failed to encode compiler input: %w", err)
	}

	stdout, stderr, runErr := c.runner.Run(ctx, c.solcPath, []string{"--standard-json"}, input)

	var output standardOutput
	if err := json.Unmarshal(stdout, &output); err != nil {
		if runErr != nil {
			logger.ErrorCtx(ctx, runErr, zap.String("stderr", strings.TrimSpace(string(stderr))))
			return nil, fmt.Errorf("%w: %w", ErrCompilerUnavailable, runErr)
		}
		return nil, domain.NewProtocolError("invalid compiler output", err)
	}

	if diags := errorDiagnostics(output.Errors); len(diags) > 0 {
		return nil, &domain.CompilationError{Diagnostics: diags}
	}

	unit, ok := output.Contracts[SourceFileName][unitName]
	if !ok {
		return nil, domain.NewProtocolError(fmt.Sprintf("contract %s not found in compiler output", unitName), nil)
	}
	if len(unit.ABI) == 0 || unit.EVM.Bytecode.Object == "" {
		return nil, domain.NewProtocolError(fmt.Sprintf("contract %s has no abi or bytecode", unitName), nil)
	}

	return &Artifact{
		ABI:      unit.ABI,
		Bytecode: unit.EVM.Bytecode.Object,
	}, nil
}

// errorDiagnostics keeps the error-severity messages; warnings are dropped
func errorDiagnostics(all []diagnostic) []string {
	var out []string
	for _, d := range all {
		if d.Severity == "error" {
			out = append(out, d.Message)
		}
	}
	return out
}
