package procurement

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// ContractService handles contract-related business operations
type ContractService struct {
	contractRepo procurement.ContractRepository
}

// NewContractService creates a new ContractService
func NewContractService(contractRepo procurement.ContractRepository) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
	}
}

// Create creates a new contract in the Pending state
func (s *ContractService) Create(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	contract := procurement.NewContract(req.Title, req.Description)
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}
	return NewContractResponse(contract), nil
}

// List returns all contracts. An empty store yields an empty slice, not nil.
func (s *ContractService) List(ctx context.Context) ([]ContractResponse, error) {
	contracts, err := s.contractRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		responses = append(responses, *NewContractResponse(&contracts[i]))
	}
	return responses, nil
}

// UpdateStatus changes a contract's status to the request value as given
// and echoes back the ID and new status only.
func (s *ContractService) UpdateStatus(ctx context.Context, id int64, req UpdateContractStatusRequest) (*ContractStatusResponse, error) {
	if err := s.contractRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Contract not found")
		}
		return nil, err
	}
	return &ContractStatusResponse{ID: id, Status: req.Status}, nil
}

// Delete removes a contract by ID
func (s *ContractService) Delete(ctx context.Context, id int64) error {
	if err := s.contractRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Contract not found")
		}
		return err
	}
	return nil
}
