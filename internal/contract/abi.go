package contract

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/feral-file/ff-token-deployer/internal/erc20"
)

// ABIEntry is one entry of a compiled interface (function, event, constructor, ...)
type ABIEntry struct {
	Name            string     `json:"name,omitempty"`
	Type            string     `json:"type"`
	Inputs          []ABIParam `json:"inputs"`
	Outputs         []ABIParam `json:"outputs,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`
}

// ABIParam is a parameter of an ABI entry
type ABIParam struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	InternalType string `json:"internalType,omitempty"`
}

// IsFunction reports whether the entry is a callable function
func (e ABIEntry) IsFunction() bool {
	return e.Type == "function"
}

// ParseABI decodes a JSON interface description
func ParseABI(raw []byte) ([]ABIEntry, error) {
	var entries []ABIEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ABI: %w", err)
	}
	return entries, nil
}

// FilterFunctions keeps the function entries whose name is in names, in interface order
func FilterFunctions(entries []ABIEntry, names []string) []ABIEntry {
	out := make([]ABIEntry, 0, len(names))
	for _, e := range entries {
		if !e.IsFunction() || !slices.Contains(names, e.Name) {
			continue
		}
		if e.Inputs == nil {
			e.Inputs = []ABIParam{}
		}
		out = append(out, e)
	}
	return out
}

// OwnerFunctions returns the owner-restricted functions offered for direct execution.
// Functions outside the allow-list are never returned, even when present in the interface.
func OwnerFunctions(entries []ABIEntry) []ABIEntry {
	return FilterFunctions(entries, erc20.OwnerFunctionNames)
}

// IsOwnerFunction reports whether name is in the owner-function allow-list
func IsOwnerFunction(name string) bool {
	return slices.Contains(erc20.OwnerFunctionNames, name)
}

// FindFunction returns the function entry called name
func FindFunction(entries []ABIEntry, name string) (ABIEntry, bool) {
	for _, e := range entries {
		if e.IsFunction() && e.Name == name {
			return e, true
		}
	}
	return ABIEntry{}, false
}
