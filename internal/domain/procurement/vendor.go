package procurement

import "context"

// Vendor represents a vendor record.
//
// Vendor creation and update are deliberately pass-through: no field
// validation is applied, so callers may persist empty names or contacts.
// This mirrors the behavior the client application depends on and differs
// from Supplier, which validates all of its fields.
type Vendor struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:text;not null"`
	Contact string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor. The ID is assigned by the store on insert.
func NewVendor(name, contact string) *Vendor {
	return &Vendor{
		Name:    name,
		Contact: contact,
	}
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// Create inserts a new vendor and assigns its generated ID
	Create(ctx context.Context, vendor *Vendor) error

	// FindAll returns all persisted vendors
	FindAll(ctx context.Context) ([]Vendor, error)

	// Update rewrites the vendor row identified by vendor.ID.
	// Returns shared.ErrNotFound when no row was affected.
	Update(ctx context.Context, vendor *Vendor) error

	// Delete removes the vendor with the given ID.
	// Returns shared.ErrNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error
}
