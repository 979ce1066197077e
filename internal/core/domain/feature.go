package domain

import "sort"

// FeatureEntry is one non-zero count of a FeatureVector.
type FeatureEntry struct {
	Index int
	Count float64
}

// FeatureVector holds the token counts of one document over a Vocabulary.
// Storage is sparse, but the vector always reports the full vocabulary
// length through Len.
type FeatureVector struct {
	dim     int
	entries []FeatureEntry // sorted by Index, Count != 0
}

// NewFeatureVector builds a vector of length dim from index counts.
// Indices outside [0, dim) and zero counts are dropped.
func NewFeatureVector(dim int, counts map[int]float64) FeatureVector {
	if dim < 0 {
		dim = 0
	}
	entries := make([]FeatureEntry, 0, len(counts))
	for i, c := range counts {
		if i < 0 || i >= dim || c == 0 {
			continue
		}
		entries = append(entries, FeatureEntry{Index: i, Count: c})
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Index < entries[b].Index
	})
	return FeatureVector{dim: dim, entries: entries}
}

// NewDenseFeatureVector builds a vector from a dense slice.
func NewDenseFeatureVector(values []float64) FeatureVector {
	v := FeatureVector{dim: len(values)}
	for i, c := range values {
		if c != 0 {
			v.entries = append(v.entries, FeatureEntry{Index: i, Count: c})
		}
	}
	return v
}

// Len returns the vector length, equal to the vocabulary size.
func (v FeatureVector) Len() int {
	return v.dim
}

// At returns the count at index i.
func (v FeatureVector) At(i int) float64 {
	j := sort.Search(len(v.entries), func(k int) bool {
		return v.entries[k].Index >= i
	})
	if j < len(v.entries) && v.entries[j].Index == i {
		return v.entries[j].Count
	}
	return 0
}

// NonZero returns the non-zero entries in index order.
func (v FeatureVector) NonZero() []FeatureEntry {
	cp := make([]FeatureEntry, len(v.entries))
	copy(cp, v.entries)
	return cp
}

// Nnz returns the number of non-zero entries.
func (v FeatureVector) Nnz() int {
	return len(v.entries)
}

// IsZero returns true if every count is zero.
func (v FeatureVector) IsZero() bool {
	return len(v.entries) == 0
}

// Sum returns the total token count.
func (v FeatureVector) Sum() float64 {
	var s float64
	for _, e := range v.entries {
		s += e.Count
	}
	return s
}

// Dot returns the dot product with a dense weight slice of the same length.
// The caller checks lengths.
func (v FeatureVector) Dot(weights []float64) float64 {
	var s float64
	for _, e := range v.entries {
		s += e.Count * weights[e.Index]
	}
	return s
}

// AddScaledTo adds alpha*v to dst in place.
func (v FeatureVector) AddScaledTo(dst []float64, alpha float64) {
	for _, e := range v.entries {
		dst[e.Index] += alpha * e.Count
	}
}

// Dense expands the vector to a full slice.
func (v FeatureVector) Dense() []float64 {
	out := make([]float64, v.dim)
	for _, e := range v.entries {
		out[e.Index] = e.Count
	}
	return out
}
