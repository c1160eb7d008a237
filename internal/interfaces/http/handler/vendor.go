package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/application/procurement"
)

// VendorHandler handles vendor API endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *procurement.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *procurement.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// RegisterRoutes registers vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.Create)
		vendors.GET("", h.List)
		vendors.PUT("/:id", h.Update)
		vendors.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /vendors. The body is stored as given; absent or
// empty fields are not an error.
func (h *VendorHandler) Create(c *gin.Context) {
	var req procurement.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, vendor)
}

// List handles GET /vendors
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, vendors)
}

// Update handles PUT /vendors/:id
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req procurement.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, vendor)
}

// Delete handles DELETE /vendors/:id
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
