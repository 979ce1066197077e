package language

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure lemmatizers implement the interface.
var (
	_ driven.Lemmatizer = (*DictionaryLemmatizer)(nil)
	_ driven.Lemmatizer = (*IdentityLemmatizer)(nil)
)

// loadEnglish decompresses the embedded English lemma dictionary once per
// process. The resulting lemmatizer is read-only and shared.
var loadEnglish = sync.OnceValues(func() (*golem.Lemmatizer, error) {
	return golem.New(en.New())
})

// NewLemmatizer returns the lemmatizer for the configured type.
func NewLemmatizer(t domain.LemmatizerType) (driven.Lemmatizer, error) {
	switch t {
	case domain.LemmatizerDictionary:
		return NewDictionaryLemmatizer()
	case domain.LemmatizerIdentity:
		return NewIdentityLemmatizer(), nil
	default:
		return nil, fmt.Errorf("%w: lemmatizer %q", domain.ErrInvalidInput, t)
	}
}

// IdentityLemmatizer returns every token unchanged.
type IdentityLemmatizer struct{}

// NewIdentityLemmatizer creates an identity lemmatizer.
func NewIdentityLemmatizer() *IdentityLemmatizer {
	return &IdentityLemmatizer{}
}

// Name returns the lemmatizer name.
func (l *IdentityLemmatizer) Name() string {
	return domain.LemmatizerIdentity.String()
}

// Lemma returns token.
func (l *IdentityLemmatizer) Lemma(token string) string {
	return token
}

// DictionaryLemmatizer maps inflected English words to a base form listed in
// an embedded lemma dictionary. Words missing from the dictionary are
// returned unchanged, so no rule ever produces a form that is not a word.
type DictionaryLemmatizer struct {
	dict *golem.Lemmatizer
}

// NewDictionaryLemmatizer creates a lemmatizer over the English dictionary.
func NewDictionaryLemmatizer() (*DictionaryLemmatizer, error) {
	dict, err := loadEnglish()
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &DictionaryLemmatizer{dict: dict}, nil
}

// Name returns the lemmatizer name.
func (l *DictionaryLemmatizer) Name() string {
	return domain.LemmatizerDictionary.String()
}

// Lemma returns the base form of token, or token itself when the
// dictionary does not list it.
func (l *DictionaryLemmatizer) Lemma(token string) string {
	if token == "" {
		return token
	}
	return l.dict.Lemma(token)
}
