package procurement

import (
	"context"

	"github.com/procure/backend/internal/domain/shared"
)

// Supplier represents a supplier record. Unlike Vendor, every supplier
// field is required: creation and update both reject a missing or empty
// name, contact, or email.
type Supplier struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:text;not null"`
	Contact string `gorm:"type:text;not null"`
	Email   string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name, contact, email string) (*Supplier, error) {
	if err := ValidateSupplierFields(name, contact, email); err != nil {
		return nil, err
	}
	return &Supplier{
		Name:    name,
		Contact: contact,
		Email:   email,
	}, nil
}

// ValidateSupplierFields checks that all supplier fields are non-empty
func ValidateSupplierFields(name, contact, email string) error {
	if name == "" || contact == "" || email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name, contact, and email are required")
	}
	return nil
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// Create inserts a new supplier and assigns its generated ID
	Create(ctx context.Context, supplier *Supplier) error

	// FindAll returns all persisted suppliers
	FindAll(ctx context.Context) ([]Supplier, error)

	// Update rewrites the supplier row identified by supplier.ID.
	// Returns shared.ErrNotFound when no row was affected.
	Update(ctx context.Context, supplier *Supplier) error

	// Delete removes the supplier with the given ID.
	// Returns shared.ErrNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error
}
