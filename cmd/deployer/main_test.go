package main

import (
	"bytes"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/erc20"
	"github.com/feral-file/ff-token-deployer/internal/mocks"
	"github.com/feral-file/ff-token-deployer/internal/workflow"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--env", t.TempDir()}, args...))
	t.Cleanup(func() {
		sourceReq.name, sourceReq.symbol, sourceReq.supply = "", "", ""
		sourceOutput = ""
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSourceCommand_PrintsGeneratedSource(t *testing.T) {
	stdout, _, err := runCLI(t, "source", "--name", "Test Token", "--symbol", "TST", "--supply", "1000")
	require.NoError(t, err)

	supply, err := erc20.ParseSupply("1000")
	require.NoError(t, err)
	assert.Equal(t, erc20.Generate("Test Token", "TST", supply), stdout)
	assert.Contains(t, stdout, "contract TSTToken")
}

func TestSourceCommand_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "Token.sol")

	_, stderr, err := runCLI(t, "source", "--name", "Big", "--symbol", "BIG", "--supply", "500000", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "BIGToken")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	supply, err := erc20.ParseSupply("500000")
	require.NoError(t, err)
	assert.Equal(t, erc20.Generate("Big", "BIG", supply), string(data))
}

func TestWriteSource_WrapsFileSystemError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := mocks.NewMockFileSystem(ctrl)
	fs.EXPECT().WriteFile("/readonly/Token.sol", []byte("contract")).Return(errors.New("permission denied"))

	err := writeSource(fs, "/readonly/Token.sol", "contract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/readonly/Token.sol")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestSourceCommand_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing symbol", args: []string{"source", "--name", "A", "--supply", "1"}},
		{name: "zero supply", args: []string{"source", "--name", "A", "--symbol", "A", "--supply", "0"}},
		{name: "non numeric supply", args: []string{"source", "--name", "A", "--symbol", "A", "--supply", "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, stdout)
		})
	}
}

func TestProgressObserver_SkipsRepeatedMessages(t *testing.T) {
	var buf bytes.Buffer
	observe := progressObserver(&buf)

	observe(workflow.Session{Message: workflow.MessageCompiling})
	observe(workflow.Session{Message: workflow.MessageCompiling})
	observe(workflow.Session{})
	observe(workflow.Session{State: workflow.StateDeploying, Message: workflow.MessageDeploying})
	observe(workflow.Session{State: workflow.StateIdle, Message: "Contract deployed at: 0x1"})

	assert.Equal(t, "Compiling contract...\nDeploying contract...\n", buf.String())
}

func TestExecHelp_ArgumentsMatchGeneratedContract(t *testing.T) {
	source := erc20.Generate("Test", "TST", big.NewInt(1))

	examples := 0
	for _, line := range strings.Split(execCmd.Long, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "deployer" || fields[1] != "exec" {
			continue
		}
		examples++
		function := fields[3]

		decl := regexp.MustCompile(`function ` + function + `\(([^)]*)\)`).FindStringSubmatch(source)
		require.NotNil(t, decl, "%s is not declared", function)
		var params []string
		for _, p := range strings.Split(decl[1], ",") {
			if p = strings.TrimSpace(p); p != "" {
				words := strings.Fields(p)
				params = append(params, words[len(words)-1])
			}
		}

		for i := 4; i+1 < len(fields); i++ {
			if fields[i] != "--arg" {
				continue
			}
			name, _, _ := strings.Cut(fields[i+1], "=")
			assert.Contains(t, params, name, "%s has no parameter %s", function, name)
		}
	}
	assert.Positive(t, examples)
}

func TestPrintFunctions(t *testing.T) {
	var buf bytes.Buffer
	printFunctions(&buf, []contract.ABIEntry{
		{Name: "mint", Type: "function", Inputs: []contract.ABIParam{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}}},
		{Name: "pause", Type: "function"},
	})

	assert.Equal(t, "Owner functions:\n  mint(address to, uint256 amount)\n  pause()\n", buf.String())
}

func TestPrintMinted(t *testing.T) {
	var buf bytes.Buffer
	printMinted(&buf, "TST", big.NewInt(1000), common.HexToAddress("0x1111111111111111111111111111111111111111"))

	assert.Equal(t,
		"Minted 1000 TST (1000000000000000000000 base units) to 0x1111111111111111111111111111111111111111\n",
		buf.String())
}

func TestPrintSession(t *testing.T) {
	var buf bytes.Buffer
	printSession(&buf, workflow.Session{
		Account: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		ChainID: 10143,
	})

	assert.Contains(t, buf.String(), "0x1111111111111111111111111111111111111111")
	assert.Contains(t, buf.String(), "10143")
	assert.NotContains(t, buf.String(), "Contract:")
}

func TestPrintTokens_Empty(t *testing.T) {
	var buf bytes.Buffer
	printTokens(&buf, nil)
	assert.Equal(t, "No deployed tokens\n", buf.String())
}
