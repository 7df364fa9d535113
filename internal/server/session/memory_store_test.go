package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "a", Data{UserID: "u1"}, time.Minute))
	require.NoError(t, s.Set(ctx, "b", Data{UserID: "u2"}, 0))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	now = now.Add(time.Minute)

	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	got, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)

	require.NoError(t, s.Destroy(ctx, "b"))
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
