package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-token-deployer/internal/api/shared/dto"
	"github.com/feral-file/ff-token-deployer/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateDeployedToken records a deployment
	// POST /api/tokens
	CreateDeployedToken(c *gin.Context)

	// ListDeployedTokens lists the deployments of a wallet
	// GET /api/tokens/:walletAddress
	ListDeployedTokens(c *gin.Context)

	// Compile compiles a contract source
	// POST /api/compile
	Compile(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) CreateDeployedToken(c *gin.Context) {
	var req dto.CreateDeployedTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	token, err := h.executor.CreateDeployedToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save token")
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) ListDeployedTokens(c *gin.Context) {
	walletAddress := strings.TrimSpace(c.Param("walletAddress"))
	if walletAddress == "" {
		respondValidationError(c, "Wallet address is required")
		return
	}

	tokens, err := h.executor.ListDeployedTokens(c.Request.Context(), walletAddress)
	if err != nil {
		respondError(c, err, "Failed to get tokens")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *handler) Compile(c *gin.Context) {
	var req dto.CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	artifact, err := h.executor.Compile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Failed to compile %s", req.ContractName))
		return
	}

	c.JSON(http.StatusOK, artifact)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "ff-token-deployer-api",
	})
}
