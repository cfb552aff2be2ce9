package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOnlyCache(t *testing.T) {
	ctx := context.Background()
	c := New(nil)

	_, ok := c.Get(ctx, "user")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "user", "用户"))

	got, ok := c.Get(ctx, "user")
	require.True(t, ok)
	assert.Equal(t, "用户", got)

	// Keys are case-sensitive source text.
	_, ok = c.Get(ctx, "User")
	assert.False(t, ok)
}

func TestNilPoolNoOps(t *testing.T) {
	ctx := context.Background()
	c := New(nil)
	assert.NoError(t, c.EnsureSchema(ctx))
	assert.NoError(t, c.Preload(ctx))
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	c := New(nil)
	require.NoError(t, c.Set(ctx, "name", "旧"))
	require.NoError(t, c.Set(ctx, "name", "名称"))

	got, _ := c.Get(ctx, "name")
	assert.Equal(t, "名称", got)
}
