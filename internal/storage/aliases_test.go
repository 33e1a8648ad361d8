package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauntidev/kaunti/internal/common"
)

func TestSaveAliasOverride_Upsert(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	err := store.SaveAliasOverride(ctx, AliasOverride{
		BoundaryKey: "thika",
		RecordKey:   "kiambu",
		Note:        "boundary tile labeled by principal town",
	})
	require.NoError(t, err)

	// Saving the same boundary key again updates in place.
	err = store.SaveAliasOverride(ctx, AliasOverride{
		BoundaryKey: "thika",
		RecordKey:   "nairobicity",
	})
	require.NoError(t, err)

	overrides, err := store.ListAliasOverrides(ctx)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, "thika", overrides[0].BoundaryKey)
	assert.Equal(t, "nairobicity", overrides[0].RecordKey)
	assert.False(t, overrides[0].CreatedAt.IsZero())
}

func TestSaveAliasOverride_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	err := store.SaveAliasOverride(ctx, AliasOverride{BoundaryKey: "", RecordKey: "kiambu"})
	assert.ErrorIs(t, err, ErrInvalidAlias)

	err = store.SaveAliasOverride(ctx, AliasOverride{BoundaryKey: "thika", RecordKey: ""})
	assert.ErrorIs(t, err, ErrInvalidAlias)

	err = store.SaveAliasOverride(ctx, AliasOverride{BoundaryKey: "kiambu", RecordKey: "kiambu"})
	assert.ErrorIs(t, err, ErrInvalidAlias, "self-aliases are rejected")
}

func TestDeleteAliasOverride(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAliasOverride(ctx, AliasOverride{
		BoundaryKey: "hola",
		RecordKey:   "tanariver",
	}))

	require.NoError(t, store.DeleteAliasOverride(ctx, "hola"))
	assert.ErrorIs(t, store.DeleteAliasOverride(ctx, "hola"), common.ErrNotFound)
}

func TestAliasOverrideMap(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	m, err := store.AliasOverrideMap(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)

	require.NoError(t, store.SaveAliasOverride(ctx, AliasOverride{BoundaryKey: "thika", RecordKey: "kiambu"}))
	require.NoError(t, store.SaveAliasOverride(ctx, AliasOverride{BoundaryKey: "hola", RecordKey: "tanariver"}))

	m, err = store.AliasOverrideMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"thika": "kiambu",
		"hola":  "tanariver",
	}, m)
}
