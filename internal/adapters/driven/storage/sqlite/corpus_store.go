package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// CorpusStore implements driven.CorpusSource and driven.CorpusWriter over
// the corpus_documents table.
type CorpusStore struct {
	store *Store
}

var (
	_ driven.CorpusSource = (*CorpusStore)(nil)
	_ driven.CorpusWriter = (*CorpusStore)(nil)
)

// Name returns the source name.
func (s *CorpusStore) Name() string {
	return domain.CorpusSourceSQLite.String()
}

// Categories returns the distinct categories in sorted order.
func (s *CorpusStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT category FROM corpus_documents ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying categories: %w", domain.ErrCorpusUnavailable, err)
	}
	defer rows.Close()

	var categories []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

// Documents returns the texts of one category in insertion order.
func (s *CorpusStore) Documents(ctx context.Context, category string) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT text FROM corpus_documents WHERE category = ? ORDER BY id
	`, category)
	if err != nil {
		return nil, fmt.Errorf("%w: querying documents: %w", domain.ErrCorpusUnavailable, err)
	}
	defer rows.Close()

	var texts []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		texts = append(texts, text)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return texts, nil
}

// ReplaceAll swaps the stored corpus for docs in one transaction. On any
// error the previous contents are kept.
func (s *CorpusStore) ReplaceAll(ctx context.Context, docs map[string][]string) error {
	for category := range docs {
		if category == "" {
			return domain.ErrInvalidInput
		}
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM corpus_documents"); err != nil {
		return fmt.Errorf("clearing corpus: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO corpus_documents (category, text) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	categories := make([]string, 0, len(docs))
	for category := range docs {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, text := range docs[category] {
			if _, err := stmt.ExecContext(ctx, category, text); err != nil {
				return fmt.Errorf("saving document: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing corpus: %w", err)
	}
	return nil
}
