package persistence

import (
	"context"
	"testing"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormVendorRepository_Create(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormVendorRepository(db.DB)
	ctx := context.Background()

	t.Run("assigns generated ids in order", func(t *testing.T) {
		first := procurement.NewVendor("Acme", "555-0100")
		require.NoError(t, repo.Create(ctx, first))
		assert.Positive(t, first.ID)

		second := procurement.NewVendor("Globex", "555-0200")
		require.NoError(t, repo.Create(ctx, second))
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("accepts empty fields", func(t *testing.T) {
		vendor := procurement.NewVendor("", "")
		require.NoError(t, repo.Create(ctx, vendor))
		assert.Positive(t, vendor.ID)
	})
}

func TestGormVendorRepository_FindAll(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormVendorRepository(db.DB)
	ctx := context.Background()

	t.Run("empty collection is valid", func(t *testing.T) {
		vendors, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, vendors)
	})

	t.Run("round trip includes created vendor", func(t *testing.T) {
		vendor := procurement.NewVendor("Acme", "555-0100")
		require.NoError(t, repo.Create(ctx, vendor))

		vendors, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, vendors, 1)
		assert.Equal(t, vendor.ID, vendors[0].ID)
		assert.Equal(t, "Acme", vendors[0].Name)
		assert.Equal(t, "555-0100", vendors[0].Contact)
	})
}

func TestGormVendorRepository_Update(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormVendorRepository(db.DB)
	ctx := context.Background()

	t.Run("rewrites existing row", func(t *testing.T) {
		vendor := procurement.NewVendor("Acme", "555-0100")
		require.NoError(t, repo.Create(ctx, vendor))

		vendor.Name = "Acme Industries"
		vendor.Contact = "555-0199"
		require.NoError(t, repo.Update(ctx, vendor))

		vendors, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, vendors, 1)
		assert.Equal(t, "Acme Industries", vendors[0].Name)
		assert.Equal(t, "555-0199", vendors[0].Contact)
	})

	t.Run("writes empty strings", func(t *testing.T) {
		vendor := procurement.NewVendor("Globex", "555-0200")
		require.NoError(t, repo.Create(ctx, vendor))

		vendor.Name = ""
		vendor.Contact = ""
		require.NoError(t, repo.Update(ctx, vendor))

		vendors, err := repo.FindAll(ctx)
		require.NoError(t, err)
		for _, v := range vendors {
			if v.ID == vendor.ID {
				assert.Empty(t, v.Name)
				assert.Empty(t, v.Contact)
			}
		}
	})

	t.Run("returns not found for absent id", func(t *testing.T) {
		err := repo.Update(ctx, &procurement.Vendor{ID: 9999, Name: "Ghost", Contact: "none"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormVendorRepository_Delete(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormVendorRepository(db.DB)
	ctx := context.Background()

	t.Run("removes row then reports not found", func(t *testing.T) {
		vendor := procurement.NewVendor("Acme", "555-0100")
		require.NoError(t, repo.Create(ctx, vendor))

		require.NoError(t, repo.Delete(ctx, vendor.ID))

		vendors, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, vendors)

		// Second delete of the same id is never a silent success
		assert.ErrorIs(t, repo.Delete(ctx, vendor.ID), shared.ErrNotFound)
	})

	t.Run("returns not found for absent id", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, 9999), shared.ErrNotFound)
	})
}
