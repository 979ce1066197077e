package domain

// Vocabulary maps canonical tokens to dense, zero-based feature indices.
// Only the vectoriser builds one; it is read-only afterwards.
type Vocabulary struct {
	index map[string]int
	terms []string
}

// NewVocabulary assigns indices to terms in the order given.
// Duplicate terms keep their first index.
func NewVocabulary(terms []string) *Vocabulary {
	v := &Vocabulary{
		index: make(map[string]int, len(terms)),
		terms: make([]string, 0, len(terms)),
	}
	for _, t := range terms {
		if _, ok := v.index[t]; ok {
			continue
		}
		v.index[t] = len(v.terms)
		v.terms = append(v.terms, t)
	}
	return v
}

// Size returns the number of distinct terms.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Index returns the feature index of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.index[term]
	return i, ok
}

// Contains reports whether term has an index.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.Index(term)
	return ok
}

// Term returns the term at index i, or "" when out of range.
func (v *Vocabulary) Term(i int) string {
	if v == nil || i < 0 || i >= len(v.terms) {
		return ""
	}
	return v.terms[i]
}

// Terms returns the terms in index order.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	cp := make([]string, len(v.terms))
	copy(cp, v.terms)
	return cp
}
