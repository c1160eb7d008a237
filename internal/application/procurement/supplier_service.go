package procurement

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo procurement.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo procurement.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier. All three fields must be non-empty.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := procurement.NewSupplier(req.Name, req.Contact, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return NewSupplierResponse(supplier), nil
}

// List returns all suppliers. An empty store yields an empty slice, not nil.
func (s *SupplierService) List(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, *NewSupplierResponse(&suppliers[i]))
	}
	return responses, nil
}

// Update replaces all supplier fields with the request values. Field
// validation runs before the row is touched, so an invalid request never
// reveals whether the ID exists.
func (s *SupplierService) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (*SupplierResponse, error) {
	if err := procurement.ValidateSupplierFields(req.Name, req.Contact, req.Email); err != nil {
		return nil, err
	}

	supplier := &procurement.Supplier{
		ID:      id,
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Supplier not found")
		}
		return nil, err
	}
	return NewSupplierResponse(supplier), nil
}

// Delete removes a supplier by ID
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Supplier not found")
		}
		return err
	}
	return nil
}
