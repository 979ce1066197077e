package language

import (
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// Ensure English implements the interface.
var _ driven.StopwordSource = (*English)(nil)

// englishStopwords is the standard English stopword list, including the
// contraction fragments ("don", "t", "ll") that tokenisation leaves behind.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "you're", "you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "she's", "her", "hers", "herself",
	"it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "that'll", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn", "doesn't",
	"hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't",
}

// English is the English stopword resource.
type English struct {
	set map[string]struct{}
}

// NewEnglish creates the English stopword resource.
// Extra words are added to the built-in list, lower-cased by the caller.
func NewEnglish(extra ...string) *English {
	set := make(map[string]struct{}, len(englishStopwords)+len(extra))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &English{set: set}
}

// Stopwords returns a copy of the stopword set.
func (e *English) Stopwords() map[string]struct{} {
	cp := make(map[string]struct{}, len(e.set))
	for w := range e.set {
		cp[w] = struct{}{}
	}
	return cp
}

// Len returns the number of stopwords.
func (e *English) Len() int {
	return len(e.set)
}
