package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/application/procurement"
)

// supplierFieldsMessage is the single validation message for suppliers;
// clients are not told which field was missing.
const supplierFieldsMessage = "Name, contact, and email are required"

// SupplierHandler handles supplier API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *procurement.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *procurement.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// RegisterRoutes registers supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /suppliers. All three fields must be present and
// non-empty.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req procurement.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isValidationError(err) {
			h.BadRequest(c, supplierFieldsMessage)
			return
		}
		h.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, supplier)
}

// List handles GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, suppliers)
}

// Update handles PUT /suppliers/:id. Validation failures win over unknown
// IDs, so the 400 comes back even for rows that do not exist.
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req procurement.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isValidationError(err) {
			h.BadRequest(c, supplierFieldsMessage)
			return
		}
		h.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, supplier)
}

// Delete handles DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
