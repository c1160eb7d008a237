package procurement

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo procurement.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo procurement.VendorRepository) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
	}
}

// Create creates a new vendor from the request fields as given
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	vendor := procurement.NewVendor(req.Name, req.Contact)
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return NewVendorResponse(vendor), nil
}

// List returns all vendors. An empty store yields an empty slice, not nil,
// so the collection always serializes as a JSON array.
func (s *VendorService) List(ctx context.Context) ([]VendorResponse, error) {
	vendors, err := s.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		responses = append(responses, *NewVendorResponse(&vendors[i]))
	}
	return responses, nil
}

// Update replaces both vendor fields with the request values and echoes
// them back without re-reading the row.
func (s *VendorService) Update(ctx context.Context, id int64, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor := &procurement.Vendor{
		ID:      id,
		Name:    req.Name,
		Contact: req.Contact,
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	return NewVendorResponse(vendor), nil
}

// Delete removes a vendor by ID
func (s *VendorService) Delete(ctx context.Context, id int64) error {
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return err
	}
	return nil
}
