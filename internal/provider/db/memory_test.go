package providerdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

func TestMemory_ListByPincode(t *testing.T) {
	repo := NewMemory(Seed())
	ctx := context.Background()

	first, err := repo.ListByPincode(ctx, "560001")
	require.NoError(t, err)
	require.Len(t, first, 9)

	second, err := repo.ListByPincode(ctx, "110001")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	first[0].Name = "changed"
	again, err := repo.ListByPincode(ctx, "560001")
	require.NoError(t, err)
	assert.Equal(t, "Mohammed Azhar", again[0].Name)
}

func TestMemory_GetByContact(t *testing.T) {
	repo := NewMemory(Seed())
	ctx := context.Background()

	p, err := repo.GetByContact(ctx, "+91 80500 11223")
	require.NoError(t, err)
	assert.Equal(t, "QuickFix Plumbers", p.Name)

	_, err = repo.GetByContact(ctx, "9999999999")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestMemory_Create(t *testing.T) {
	repo := NewMemory(Seed())
	ctx := context.Background()

	created, err := repo.Create(ctx, "560001", provider.Fields{
		Name:        "New Shop",
		ServiceType: provider.Shop,
		Contact:     "9876543210",
		ShowContact: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.True(t, created.IsVerified)

	list, err := repo.ListByPincode(ctx, "560001")
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, *created, list[0])

	found, err := repo.GetByContact(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestMemory_Update(t *testing.T) {
	repo := NewMemory(Seed())
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)

	fields := p.Fields()
	fields.Bio = "Groceries and more"
	updated, err := repo.Update(ctx, p.Merge(fields))
	require.NoError(t, err)
	assert.Equal(t, "Groceries and more", updated.Bio)
	assert.False(t, updated.IsVerified)

	list, err := repo.ListByPincode(ctx, "560001")
	require.NoError(t, err)
	require.Len(t, list, 9)
	assert.Equal(t, *updated, list[4])

	_, err = repo.Update(ctx, provider.Provider{ID: 42})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
