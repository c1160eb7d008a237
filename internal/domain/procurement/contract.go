package procurement

import "context"

// ContractStatusPending is the status assigned to every new contract
const ContractStatusPending = "Pending"

// Contract represents a contract record. Title and description are fixed
// at creation; only the status can change afterwards. Creation applies no
// field validation (see Vendor for the same pass-through behavior).
type Contract struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:text;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"type:text;default:'Pending'"`
}

// TableName returns the table name for GORM
func (Contract) TableName() string {
	return "contracts"
}

// NewContract creates a new contract with the default Pending status
func NewContract(title, description string) *Contract {
	return &Contract{
		Title:       title,
		Description: description,
		Status:      ContractStatusPending,
	}
}

// ContractRepository defines the interface for contract persistence
type ContractRepository interface {
	// Create inserts a new contract and assigns its generated ID
	Create(ctx context.Context, contract *Contract) error

	// FindAll returns all persisted contracts
	FindAll(ctx context.Context) ([]Contract, error)

	// UpdateStatus sets the status of the contract with the given ID,
	// leaving title and description untouched.
	// Returns shared.ErrNotFound when no row was affected.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Delete removes the contract with the given ID.
	// Returns shared.ErrNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error
}
