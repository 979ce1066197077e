package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("corpus.path", "/data/reviews"))
	require.NoError(t, store.Set("corpus.path", "/data/movie_reviews"))

	val, ok := store.Get("corpus.path")
	assert.True(t, ok)
	assert.Equal(t, "/data/movie_reviews", val)

	_, ok = store.Get("corpus.missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("corpus.source", "sqlite"))
	require.NoError(t, store.Set("pipeline.seed", int64(7)))
	require.NoError(t, store.Set("pipeline.samples", 5))
	require.NoError(t, store.Set("pipeline.test_ratio", 0.25))
	require.NoError(t, store.Set("classifier.regularization", 2))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("normaliser.processors", []any{"alpha", 3, "stopwords"}))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("corpus.source"), "sqlite"},
		{"string wrong type", store.GetString("pipeline.samples"), ""},
		{"int from int64", store.GetInt("pipeline.seed"), 7},
		{"int", store.GetInt("pipeline.samples"), 5},
		{"int from float64", store.GetInt("pipeline.test_ratio"), 0},
		{"int missing", store.GetInt("classifier.max_iterations"), 0},
		{"float", store.GetFloat("pipeline.test_ratio"), 0.25},
		{"float from int", store.GetFloat("classifier.regularization"), 2.0},
		{"float from int64", store.GetFloat("pipeline.seed"), 7.0},
		{"float wrong type", store.GetFloat("corpus.source"), 0.0},
		{"float missing", store.GetFloat("classifier.tolerance"), 0.0},
		{"bool", store.GetBool("history.enabled"), true},
		{"bool wrong type", store.GetBool("corpus.source"), false},
		{"slice from []any", store.GetStringSlice("normaliser.processors"), []string{"alpha", "stopwords"}},
		{"slice missing", store.GetStringSlice("missing"), []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_SaveAndLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("pipeline.seed", 42))

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, 42, store.GetInt("pipeline.seed"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = store.Set("pipeline.samples", id)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("pipeline.samples")
		}()
	}
	wg.Wait()

	_, ok := store.Get("pipeline.samples")
	assert.True(t, ok)
}

func TestNewConfigStoreFrom_Copies(t *testing.T) {
	values := map[string]any{"pipeline.seed": 3}
	store := NewConfigStoreFrom(values)

	values["pipeline.seed"] = 9

	assert.Equal(t, 3, store.GetInt("pipeline.seed"))
}
