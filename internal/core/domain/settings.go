package domain

const unknownDescription = "Unknown"

// CorpusSourceType identifies where labelled reviews are read from.
type CorpusSourceType string

// Available corpus sources.
const (
	// CorpusSourceFilesystem reads <root>/<category>/*.txt, the NLTK movie_reviews layout.
	CorpusSourceFilesystem CorpusSourceType = "filesystem"

	// CorpusSourceSQLite reads reviews imported into the local SQLite store.
	CorpusSourceSQLite CorpusSourceType = "sqlite"
)

// IsValid returns true if the source type is recognised.
func (t CorpusSourceType) IsValid() bool {
	switch t {
	case CorpusSourceFilesystem, CorpusSourceSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t CorpusSourceType) String() string {
	return string(t)
}

// Description returns a human-readable description of the source.
func (t CorpusSourceType) Description() string {
	switch t {
	case CorpusSourceFilesystem:
		return "Filesystem (category directories of .txt files)"
	case CorpusSourceSQLite:
		return "SQLite (imported corpus)"
	default:
		return unknownDescription
	}
}

// LemmatizerType selects the lemmatisation resource.
type LemmatizerType string

// Available lemmatizers.
const (
	// LemmatizerDictionary maps tokens to the base form listed in an
	// English lemma dictionary.
	LemmatizerDictionary LemmatizerType = "dictionary"

	// LemmatizerIdentity leaves tokens unchanged.
	LemmatizerIdentity LemmatizerType = "identity"
)

// IsValid returns true if the lemmatizer is recognised.
func (t LemmatizerType) IsValid() bool {
	return t == LemmatizerDictionary || t == LemmatizerIdentity
}

// String returns the string representation.
func (t LemmatizerType) String() string {
	return string(t)
}

// Description returns a human-readable description of the lemmatizer.
func (t LemmatizerType) Description() string {
	switch t {
	case LemmatizerDictionary:
		return "Dictionary (English lemma dictionary lookup)"
	case LemmatizerIdentity:
		return "Identity (no lemmatisation)"
	default:
		return unknownDescription
	}
}

// CorpusSettings holds corpus source configuration.
type CorpusSettings struct {
	// Source selects the corpus adapter.
	Source CorpusSourceType

	// Path is the corpus root directory for the filesystem source.
	// Empty means ~/nltk_data/corpora/movie_reviews.
	Path string

	// Database is the data directory for the SQLite source and run history.
	// Empty means ~/.sentiment/data.
	Database string
}

// NormaliserSettings holds text normalisation configuration.
type NormaliserSettings struct {
	// Processors is the ordered list of token processors run after tokenisation.
	Processors []string

	// Lemmatizer selects the lemmatisation resource.
	Lemmatizer LemmatizerType
}

// ClassifierSettings holds logistic regression configuration.
type ClassifierSettings struct {
	// MaxIterations bounds the optimiser.
	MaxIterations int

	// Regularization is the inverse L2 penalty strength (C).
	Regularization float64

	// Tolerance is the gradient norm at which training counts as converged.
	Tolerance float64
}

// PipelineSettings holds all configuration of a pipeline run.
type PipelineSettings struct {
	// Corpus holds corpus source settings.
	Corpus CorpusSettings

	// Seed drives shuffling and sample selection.
	Seed uint64

	// TestRatio is the fraction of documents held out for evaluation.
	TestRatio float64

	// Samples is the number of qualitative examples reported.
	Samples int

	// Normaliser holds text normalisation settings.
	Normaliser NormaliserSettings

	// MinCount drops vocabulary terms seen fewer times in training.
	MinCount int

	// Classifier holds classifier settings.
	Classifier ClassifierSettings

	// RecordHistory saves each run report to the run store.
	RecordHistory bool
}

// DefaultPipelineSettings returns settings with sensible defaults.
// The values mirror the reference batch run: an 80/20 split, seed 42,
// three samples and at most 1000 optimiser iterations.
func DefaultPipelineSettings() PipelineSettings {
	return PipelineSettings{
		Corpus: CorpusSettings{
			Source: CorpusSourceFilesystem,
		},
		Seed:      42,
		TestRatio: 0.2,
		Samples:   3,
		Normaliser: NormaliserSettings{
			Processors: DefaultProcessors(),
			Lemmatizer: LemmatizerDictionary,
		},
		MinCount: 1,
		Classifier: ClassifierSettings{
			MaxIterations:  1000,
			Regularization: 1.0,
			Tolerance:      1e-4,
		},
		RecordHistory: false,
	}
}

// DefaultProcessors returns the default token processor chain.
func DefaultProcessors() []string {
	return []string{"alpha", "stopwords", "lemmatize"}
}

// AllCorpusSources returns all available corpus sources.
func AllCorpusSources() []CorpusSourceType {
	return []CorpusSourceType{
		CorpusSourceFilesystem,
		CorpusSourceSQLite,
	}
}

// AllLemmatizers returns all available lemmatizers.
func AllLemmatizers() []LemmatizerType {
	return []LemmatizerType{
		LemmatizerDictionary,
		LemmatizerIdentity,
	}
}
