package procurement

import "github.com/procure/backend/internal/domain/procurement"

// =============================================================================
// Vendor DTOs
// =============================================================================

// CreateVendorRequest represents a request to create a new vendor.
// Fields are passed through as given; the client owns their shape.
type CreateVendorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// UpdateVendorRequest represents a request to replace a vendor's fields
type UpdateVendorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// VendorResponse represents a vendor record on the wire
type VendorResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// NewVendorResponse converts a vendor entity to a response DTO
func NewVendorResponse(vendor *procurement.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:      vendor.ID,
		Name:    vendor.Name,
		Contact: vendor.Contact,
	}
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

// UpdateSupplierRequest represents a request to replace a supplier's fields
type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

// SupplierResponse represents a supplier record on the wire
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// NewSupplierResponse converts a supplier entity to a response DTO
func NewSupplierResponse(supplier *procurement.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Contact: supplier.Contact,
		Email:   supplier.Email,
	}
}

// =============================================================================
// Contract DTOs
// =============================================================================

// CreateContractRequest represents a request to create a new contract.
// Status is never client-supplied; new contracts always start as Pending.
type CreateContractRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateContractStatusRequest represents a request to change a contract's
// status. Status is the only mutable contract field.
type UpdateContractStatusRequest struct {
	Status string `json:"status"`
}

// ContractResponse represents a contract record on the wire
type ContractResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ContractStatusResponse is the reduced echo returned by a status update
type ContractStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// NewContractResponse converts a contract entity to a response DTO
func NewContractResponse(contract *procurement.Contract) *ContractResponse {
	return &ContractResponse{
		ID:          contract.ID,
		Title:       contract.Title,
		Description: contract.Description,
		Status:      contract.Status,
	}
}
