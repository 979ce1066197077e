package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath converts a corpus location to a local path.
// Handles file:// URIs, a leading ~ and bare paths.
func ResolvePath(uri string) string {
	// Strip file:// prefix for local paths
	path := strings.TrimPrefix(uri, "file://")

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	// Bare paths pass through unchanged
	return path
}

// DefaultRoot returns the NLTK movie_reviews location under the home directory.
func DefaultRoot() string {
	return ResolvePath("~/nltk_data/corpora/movie_reviews")
}
