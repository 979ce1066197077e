package domain

import (
	"fmt"
	"math"
	"strings"
)

// Document is a labelled review as read from the corpus.
// It is created at load time and never mutated.
type Document struct {
	text  string
	label Label
}

// NewDocument creates a document from raw review text and its label.
func NewDocument(text string, label Label) Document {
	return Document{text: text, label: label}
}

// Text returns the raw review text.
func (d Document) Text() string {
	return d.text
}

// Label returns the sentiment label.
func (d Document) Label() Label {
	return d.label
}

// NormalizedDocument is the canonical token sequence derived from a review.
type NormalizedDocument struct {
	tokens []string
}

// NewNormalizedDocument wraps a token sequence. The slice is copied.
func NewNormalizedDocument(tokens []string) NormalizedDocument {
	if len(tokens) == 0 {
		return NormalizedDocument{}
	}
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return NormalizedDocument{tokens: cp}
}

// Tokens returns a copy of the token sequence.
func (n NormalizedDocument) Tokens() []string {
	if len(n.tokens) == 0 {
		return nil
	}
	cp := make([]string, len(n.tokens))
	copy(cp, n.tokens)
	return cp
}

// Len returns the number of tokens.
func (n NormalizedDocument) Len() int {
	return len(n.tokens)
}

// IsEmpty returns true if normalisation filtered out every token.
func (n NormalizedDocument) IsEmpty() bool {
	return len(n.tokens) == 0
}

// Text joins the tokens with single spaces.
func (n NormalizedDocument) Text() string {
	return strings.Join(n.tokens, " ")
}

// Each calls fn for every token in order without copying.
func (n NormalizedDocument) Each(fn func(token string)) {
	for _, t := range n.tokens {
		fn(t)
	}
}

// Split is the partition of a shuffled corpus into training and test subsets.
// It is immutable after creation.
type Split struct {
	train []Document
	test  []Document
}

// NewSplit partitions docs, in their given order, so that the last
// ceil(len(docs)*testRatio) documents form the test set.
// Both subsets must end up non-empty.
func NewSplit(docs []Document, testRatio float64) (*Split, error) {
	if testRatio <= 0 || testRatio >= 1 || math.IsNaN(testRatio) {
		return nil, fmt.Errorf("%w: test ratio %v must be between 0 and 1", ErrInvalidInput, testRatio)
	}

	n := len(docs)
	nTest := int(math.Ceil(float64(n) * testRatio))
	nTrain := n - nTest
	if nTest == 0 || nTrain == 0 {
		return nil, fmt.Errorf("%w: cannot split %d documents with test ratio %v", ErrInvalidInput, n, testRatio)
	}

	train := make([]Document, nTrain)
	copy(train, docs[:nTrain])
	test := make([]Document, nTest)
	copy(test, docs[nTrain:])

	return &Split{train: train, test: test}, nil
}

// Train returns a copy of the training documents.
func (s *Split) Train() []Document {
	cp := make([]Document, len(s.train))
	copy(cp, s.train)
	return cp
}

// Test returns a copy of the test documents.
func (s *Split) Test() []Document {
	cp := make([]Document, len(s.test))
	copy(cp, s.test)
	return cp
}

// TrainSize returns the number of training documents.
func (s *Split) TrainSize() int {
	return len(s.train)
}

// TestSize returns the number of test documents.
func (s *Split) TestSize() int {
	return len(s.test)
}

// Labels extracts the labels of docs in order.
func Labels(docs []Document) []Label {
	labels := make([]Label, len(docs))
	for i := range docs {
		labels[i] = docs[i].label
	}
	return labels
}
