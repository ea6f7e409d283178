package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api.key", "secret"))
	require.NoError(t, store.Set("enabled", true))
	require.NoError(t, store.Set("count", 3))

	assert.Equal(t, "secret", store.GetString("api.key"))
	assert.True(t, store.GetBool("enabled"))
	assert.Equal(t, 3, store.GetInt("count"))

	_, exists := store.Get("missing")
	assert.False(t, exists)
}

func TestConfigStore_GetInt_NumericWidening(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("i64", int64(7)))
	require.NoError(t, store.Set("f64", float64(9)))

	assert.Equal(t, 7, store.GetInt("i64"))
	assert.Equal(t, 9, store.GetInt("f64"))
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", []string{"not", "scalar"}))

	assert.Empty(t, store.GetString("key"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_SaveLoadAreNoOps(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", "value"))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "value", store.GetString("key"))
	assert.Equal(t, ":memory:", store.Path())
}
