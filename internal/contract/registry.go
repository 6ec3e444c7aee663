package contract

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ErrFunctionNotFound is returned when a function name is not part of the bound interface
var ErrFunctionNotFound = errors.New("function not found in ABI")

// Invocation is the typed descriptor of one callable function, resolved once from the interface
type Invocation struct {
	Name            string
	Params          []ABIParam
	StateMutability string

	method abi.Method
}

// ReadOnly reports whether the invocation is a view/pure call
func (i Invocation) ReadOnly() bool {
	return i.method.IsConstant()
}

// Pack encodes positional string arguments into calldata (selector + arguments)
func (i Invocation) Pack(args []string) ([]byte, error) {
	values, err := convertArgs(i.method.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i.Name, err)
	}

	packed, err := i.method.Inputs.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack arguments for %s: %w", i.Name, err)
	}

	return append(append([]byte{}, i.method.ID...), packed...), nil
}

// Unpack decodes return data into display strings
func (i Invocation) Unpack(data []byte) ([]string, error) {
	values, err := i.method.Outputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result of %s: %w", i.Name, err)
	}

	out := make([]string, len(values))
	for idx, v := range values {
		out[idx] = formatValue(v)
	}
	return out, nil
}

// Registry maps function names to invocation descriptors for one compiled interface
type Registry struct {
	abi         abi.ABI
	invocations map[string]Invocation
}

// NewRegistry parses a JSON interface and resolves every function descriptor
func NewRegistry(rawABI []byte) (*Registry, error) {
	parsed, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	invocations := make(map[string]Invocation, len(parsed.Methods))
	for name, method := range parsed.Methods {
		params := make([]ABIParam, len(method.Inputs))
		for i, in := range method.Inputs {
			params[i] = ABIParam{Name: in.Name, Type: in.Type.String()}
		}
		invocations[name] = Invocation{
			Name:            name,
			Params:          params,
			StateMutability: method.StateMutability,
			method:          method,
		}
	}

	return &Registry{abi: parsed, invocations: invocations}, nil
}

// Lookup returns the descriptor of the function called name
func (r *Registry) Lookup(name string) (Invocation, error) {
	inv, ok := r.invocations[name]
	if !ok {
		return Invocation{}, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return inv, nil
}

// PackConstructor encodes constructor arguments; it returns an empty slice for a constructor
// without inputs
func (r *Registry) PackConstructor(args []string) ([]byte, error) {
	values, err := convertArgs(r.abi.Constructor.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("constructor: %w", err)
	}

	packed, err := r.abi.Pack("", values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}
	return packed, nil
}
