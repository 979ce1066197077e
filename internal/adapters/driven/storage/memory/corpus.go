package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure Corpus implements the interfaces.
var (
	_ driven.CorpusSource = (*Corpus)(nil)
	_ driven.CorpusWriter = (*Corpus)(nil)
)

// Corpus is an in-memory labelled corpus for testing.
// Documents keep insertion order within a category.
type Corpus struct {
	mu        sync.RWMutex
	documents map[string][]string
}

// NewCorpus creates an empty in-memory corpus.
func NewCorpus() *Corpus {
	return &Corpus{
		documents: make(map[string][]string),
	}
}

// NewCorpusFrom creates an in-memory corpus holding docs.
func NewCorpusFrom(docs map[string][]string) *Corpus {
	c := NewCorpus()
	for category, texts := range docs {
		c.documents[category] = append([]string(nil), texts...)
	}
	return c
}

// Name returns the source name.
func (c *Corpus) Name() string {
	return "memory"
}

// Categories returns the category names in sorted order.
func (c *Corpus) Categories(_ context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	categories := make([]string, 0, len(c.documents))
	for category := range c.documents {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Documents returns a copy of the texts stored under category.
func (c *Corpus) Documents(_ context.Context, category string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	texts, ok := c.documents[category]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]string(nil), texts...), nil
}

// ReplaceAll swaps the stored documents for a copy of docs.
func (c *Corpus) ReplaceAll(_ context.Context, docs map[string][]string) error {
	next := make(map[string][]string, len(docs))
	for category, texts := range docs {
		if category == "" {
			return domain.ErrInvalidInput
		}
		next[category] = append([]string(nil), texts...)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = next
	return nil
}
