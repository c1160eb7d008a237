package procurement

import (
	"context"
	"errors"
	"testing"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVendorRepository is a mock implementation of VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *procurement.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindAll(ctx context.Context) ([]procurement.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]procurement.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *procurement.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestVendorService_Create(t *testing.T) {
	t.Run("creates vendor and returns assigned id", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*procurement.Vendor")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*procurement.Vendor).ID = 1
			}).
			Return(nil)

		resp, err := service.Create(context.Background(), CreateVendorRequest{Name: "Acme", Contact: "555-0100"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Acme", resp.Name)
		assert.Equal(t, "555-0100", resp.Contact)
		repo.AssertExpectations(t)
	})

	t.Run("accepts empty fields without complaint", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*procurement.Vendor")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*procurement.Vendor).ID = 2
			}).
			Return(nil)

		resp, err := service.Create(context.Background(), CreateVendorRequest{})

		require.NoError(t, err)
		assert.Empty(t, resp.Name)
		assert.Empty(t, resp.Contact)
	})
}

func TestVendorService_List(t *testing.T) {
	t.Run("maps entities to responses", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("FindAll", mock.Anything).Return([]procurement.Vendor{
			{ID: 1, Name: "Acme", Contact: "555-0100"},
			{ID: 2, Name: "Globex", Contact: "555-0200"},
		}, nil)

		resp, err := service.List(context.Background())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "Globex", resp[1].Name)
	})

	t.Run("empty store yields empty non-nil slice", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("FindAll", mock.Anything).Return([]procurement.Vendor{}, nil)

		resp, err := service.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestVendorService_Update(t *testing.T) {
	t.Run("echoes request fields without re-read", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("Update", mock.Anything, &procurement.Vendor{ID: 7, Name: "Acme", Contact: ""}).Return(nil)

		resp, err := service.Update(context.Background(), 7, UpdateVendorRequest{Name: "Acme", Contact: ""})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Acme", resp.Name)
		assert.Empty(t, resp.Contact)
		repo.AssertExpectations(t)
	})

	t.Run("maps missing row to vendor not found", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("Update", mock.Anything, mock.Anything).Return(shared.ErrNotFound)

		resp, err := service.Update(context.Background(), 9999, UpdateVendorRequest{Name: "Ghost"})

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Equal(t, "Vendor not found", domainErr.Message)
	})

	t.Run("passes through unexpected repository errors", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repoErr := errors.New("disk full")
		repo.On("Update", mock.Anything, mock.Anything).Return(repoErr)

		_, err := service.Update(context.Background(), 1, UpdateVendorRequest{})
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestVendorService_Delete(t *testing.T) {
	t.Run("deletes existing vendor", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("Delete", mock.Anything, int64(7)).Return(nil)

		assert.NoError(t, service.Delete(context.Background(), 7))
		repo.AssertExpectations(t)
	})

	t.Run("maps missing row to vendor not found", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("Delete", mock.Anything, int64(9999)).Return(shared.ErrNotFound)

		err := service.Delete(context.Background(), 9999)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
