package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/application/procurement"
)

// ContractHandler handles contract API endpoints
type ContractHandler struct {
	BaseHandler
	contractService *procurement.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *procurement.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// RegisterRoutes registers contract routes
func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.Create)
		contracts.GET("", h.List)
		contracts.PUT("/:id", h.UpdateStatus)
		contracts.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /contracts. Title and description are stored as
// given; the status always starts as Pending regardless of the body.
func (h *ContractHandler) Create(c *gin.Context) {
	var req procurement.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, contract)
}

// List handles GET /contracts
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.contractService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, contracts)
}

// UpdateStatus handles PUT /contracts/:id. Status is the only mutable
// field; the response echoes just the ID and the new status.
func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	var req procurement.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.contractService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, status)
}

// Delete handles DELETE /contracts/:id
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
