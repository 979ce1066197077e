package postprocessors

import (
	"github.com/custodia-labs/sentiment-cli/internal/adapters/driven/language"
	"github.com/custodia-labs/sentiment-cli/internal/configvalue"
	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/postprocessors/alpha"
	"github.com/custodia-labs/sentiment-cli/internal/postprocessors/lemmatize"
	"github.com/custodia-labs/sentiment-cli/internal/postprocessors/stopword"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(alpha.Name, buildAlpha)
	r.Register(stopword.Name, buildStopword)
	r.Register(lemmatize.Name, buildLemmatize)
}

// buildAlpha creates an alphabetic filter from generic config.
// Supported config keys:
//   - min_length (int): Shortest token kept (default: 1)
func buildAlpha(cfg map[string]any) (driven.TokenProcessor, error) {
	var opts []alpha.Option
	if cfg != nil {
		if n := getIntFromConfig(cfg, "min_length"); n > 0 {
			opts = append(opts, alpha.WithMinLength(n))
		}
	}
	return alpha.New(opts...), nil
}

// buildStopword creates a stopword filter from generic config.
// Supported config keys:
//   - extra ([]string): Words removed in addition to the supplied set
func buildStopword(cfg map[string]any) (driven.TokenProcessor, error) {
	var opts []stopword.Option
	if cfg != nil {
		if extra := getStringsFromConfig(cfg, "extra"); len(extra) > 0 {
			opts = append(opts, stopword.WithExtra(extra...))
		}
	}
	return stopword.New(opts...), nil
}

// buildLemmatize creates a lemmatising processor from generic config.
// Supported config keys:
//   - lemmatizer (string): "dictionary" or "identity" (default: "dictionary")
func buildLemmatize(cfg map[string]any) (driven.TokenProcessor, error) {
	kind := domain.LemmatizerDictionary
	if cfg != nil {
		if s, _ := configvalue.String(cfg["lemmatizer"]); s != "" {
			kind = domain.LemmatizerType(s)
		}
	}
	lem, err := language.NewLemmatizer(kind)
	if err != nil {
		return nil, err
	}
	return lemmatize.New(lem), nil
}

// getIntFromConfig reads an integer option. Missing or non-integral
// values read as 0.
func getIntFromConfig(cfg map[string]any, key string) int {
	n, _ := configvalue.Int(cfg[key])
	return n
}

// getStringsFromConfig reads a string list option, accepting []string and
// the []any that TOML arrays decode to.
func getStringsFromConfig(cfg map[string]any, key string) []string {
	v, _ := configvalue.Strings(cfg[key])
	return v
}
