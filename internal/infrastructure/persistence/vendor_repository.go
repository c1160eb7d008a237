package persistence

import (
	"context"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// Create inserts a new vendor and backfills the generated ID
func (r *GormVendorRepository) Create(ctx context.Context, vendor *procurement.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

// FindAll returns all persisted vendors
func (r *GormVendorRepository) FindAll(ctx context.Context) ([]procurement.Vendor, error) {
	var vendors []procurement.Vendor
	if err := r.db.WithContext(ctx).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Update rewrites the vendor row identified by vendor.ID. The affected-row
// count is the only existence check: zero rows means the ID does not exist.
func (r *GormVendorRepository) Update(ctx context.Context, vendor *procurement.Vendor) error {
	// Column map rather than struct update so empty strings are written too
	res := r.db.WithContext(ctx).
		Model(&procurement.Vendor{}).
		Where("id = ?", vendor.ID).
		Updates(map[string]any{
			"name":    vendor.Name,
			"contact": vendor.Contact,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the vendor with the given ID
func (r *GormVendorRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&procurement.Vendor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
