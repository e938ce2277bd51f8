package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("keywords.count", 15))
	require.NoError(t, store.Set("keywords.count", 20))

	val, ok := store.Get("keywords.count")
	assert.True(t, ok)
	assert.Equal(t, 20, val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("str", "value")
	_ = store.Set("int", 42)
	_ = store.Set("int64", int64(7))
	_ = store.Set("float", 2.5)
	_ = store.Set("bool", true)

	tests := []struct {
		key    string
		str    string
		intVal int
		float  float64
		boolV  bool
	}{
		{key: "str", str: "value"},
		{key: "int", intVal: 42, float: 42},
		{key: "int64", intVal: 7, float: 7},
		{key: "float", intVal: 2, float: 2.5},
		{key: "bool", boolV: true},
		{key: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.str, store.GetString(tt.key))
			assert.Equal(t, tt.intVal, store.GetInt(tt.key))
			assert.InDelta(t, tt.float, store.GetFloat(tt.key), 0.0001)
			assert.Equal(t, tt.boolV, store.GetBool(tt.key))
		})
	}
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	assert.Empty(t, store.Keys())

	_ = store.Set("summary.sentences", 3)
	_ = store.Set("keywords.count", 10)
	_ = store.Set("output.format", "json")

	assert.Equal(t, []string{"keywords.count", "output.format", "summary.sentences"}, store.Keys())
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n)
			_ = store.Set(key, n)
			assert.Equal(t, n, store.GetInt(key))
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys(), 50)
}

func TestConfigStore_SnapshotAndReplace(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("keywords.count", 12))

	snap := store.Snapshot()
	snap["keywords.count"] = 99
	assert.Equal(t, 12, store.GetInt("keywords.count"), "snapshot is a copy")

	src := map[string]any{"summary.sentences": int64(4)}
	store.Replace(src)
	src["summary.sentences"] = int64(8)
	assert.Equal(t, 4, store.GetInt("summary.sentences"), "replace copies its input")
	assert.Equal(t, []string{"summary.sentences"}, store.Keys())

	store.Replace(nil)
	assert.Empty(t, store.Keys())
	require.NoError(t, store.Set("output.color", true))
	assert.True(t, store.GetBool("output.color"))
}
