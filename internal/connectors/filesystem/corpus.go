// Package filesystem reads a labelled review corpus laid out as one
// directory per category containing one .txt file per review, the layout
// of the NLTK movie_reviews corpus.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure Corpus implements the interface.
var _ driven.CorpusSource = (*Corpus)(nil)

// DocumentExt is the file extension of review documents.
const DocumentExt = ".txt"

// Corpus is a CorpusSource over a directory tree.
type Corpus struct {
	rootPath string
}

// New creates a filesystem corpus rooted at rootPath.
func New(rootPath string) *Corpus {
	return &Corpus{rootPath: rootPath}
}

// Name returns the source name.
func (c *Corpus) Name() string {
	return domain.CorpusSourceFilesystem.String()
}

// Root returns the corpus root directory.
func (c *Corpus) Root() string {
	return c.rootPath
}

// Validate checks that the root exists and is a directory.
func (c *Corpus) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: corpus path does not exist: %s", domain.ErrCorpusUnavailable, c.rootPath)
		}
		return fmt.Errorf("%w: cannot access corpus path: %w", domain.ErrCorpusUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: corpus path is not a directory: %s", domain.ErrCorpusUnavailable, c.rootPath)
	}
	return nil
}

// Categories returns the sorted names of the non-hidden subdirectories.
func (c *Corpus) Categories(ctx context.Context) ([]string, error) {
	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(c.rootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read corpus root: %w", domain.ErrCorpusUnavailable, err)
	}

	var categories []string
	for _, e := range entries {
		if e.IsDir() && !isHidden(e.Name()) {
			categories = append(categories, e.Name())
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Documents returns the contents of every .txt file in the category
// directory, in file name order.
func (c *Corpus) Documents(ctx context.Context, category string) ([]string, error) {
	if category == "" || strings.ContainsAny(category, `/\`) || category == ".." {
		return nil, fmt.Errorf("%w: invalid category %q", domain.ErrInvalidInput, category)
	}

	dir := filepath.Join(c.rootPath, category)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read category %s: %w", domain.ErrCorpusUnavailable, category, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && !isHidden(e.Name()) && strings.EqualFold(filepath.Ext(e.Name()), DocumentExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	texts := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", domain.ErrCorpusUnavailable, filepath.Join(category, name), err)
		}
		texts = append(texts, string(content))
	}
	return texts, nil
}

// isHidden returns true for dot-files and dot-directories.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
