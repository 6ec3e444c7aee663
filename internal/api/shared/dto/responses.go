package dto

import "encoding/json"

// CompileResponse represents a successful compilation
type CompileResponse struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode string          `json:"bytecode"`
}

// HealthResponse represents the health status of the API
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
