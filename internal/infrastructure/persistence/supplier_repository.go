package persistence

import (
	"context"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Create inserts a new supplier and backfills the generated ID
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *procurement.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// FindAll returns all persisted suppliers
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]procurement.Supplier, error) {
	var suppliers []procurement.Supplier
	if err := r.db.WithContext(ctx).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Update rewrites the supplier row identified by supplier.ID
func (r *GormSupplierRepository) Update(ctx context.Context, supplier *procurement.Supplier) error {
	res := r.db.WithContext(ctx).
		Model(&procurement.Supplier{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]any{
			"name":    supplier.Name,
			"contact": supplier.Contact,
			"email":   supplier.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the supplier with the given ID
func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&procurement.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
