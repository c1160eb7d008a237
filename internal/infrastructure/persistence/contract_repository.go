package persistence

import (
	"context"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// Create inserts a new contract and backfills the generated ID
func (r *GormContractRepository) Create(ctx context.Context, contract *procurement.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

// FindAll returns all persisted contracts
func (r *GormContractRepository) FindAll(ctx context.Context) ([]procurement.Contract, error) {
	var contracts []procurement.Contract
	if err := r.db.WithContext(ctx).Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// UpdateStatus sets only the status column; title and description stay as created
func (r *GormContractRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := r.db.WithContext(ctx).
		Model(&procurement.Contract{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the contract with the given ID
func (r *GormContractRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&procurement.Contract{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
