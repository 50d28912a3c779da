package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/agrofocus/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Get(ctx, "users")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "users", "[]"))
	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Delete(ctx, "users"))
	_, err = s.Get(ctx, "users")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, 0, s.Len())
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	assert.ErrorIs(t, NewStore().Set(context.Background(), "", "x"), domain.ErrInvalidPayload)
}
