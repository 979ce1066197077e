package services

import (
	"fmt"

	"github.com/custodia-labs/sentiment-cli/internal/configvalue"
	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCorpusSource       = "corpus.source"
	keyCorpusPath         = "corpus.path"
	keyCorpusDatabase     = "corpus.database"
	keySeed               = "pipeline.seed"
	keyTestRatio          = "pipeline.test_ratio"
	keySamples            = "pipeline.samples"
	keyMaxIterations      = "classifier.max_iterations"
	keyRegularization     = "classifier.regularization"
	keyTolerance          = "classifier.tolerance"
	keyProcessors         = "normaliser.processors"
	keyLemmatizer         = "normaliser.lemmatizer"
	keyMinCount           = "vectorizer.min_count"
	keyHistoryEnabled     = "history.enabled"
	processorConfigPrefix = "normaliser."
)

// processorConfigKeys lists the per-processor options read from config,
// e.g. normaliser.alpha.min_length.
var processorConfigKeys = map[string][]string{
	"alpha":     {"min_length"},
	"stopwords": {"extra"},
}

// SettingsService manages pipeline settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current pipeline settings. Unset or unrecognised values
// fall back to the defaults.
func (s *SettingsService) Get() (*domain.PipelineSettings, error) {
	defaults := domain.DefaultPipelineSettings()

	settings := &domain.PipelineSettings{
		Corpus: domain.CorpusSettings{
			Source:   s.getCorpusSource(defaults.Corpus.Source),
			Path:     s.configStore.GetString(keyCorpusPath), // No default - resolved by the connector
			Database: s.configStore.GetString(keyCorpusDatabase),
		},
		Seed:      s.getSeed(defaults.Seed),
		TestRatio: s.getFloat(keyTestRatio, defaults.TestRatio),
		Samples:   s.getInt(keySamples, defaults.Samples),
		Normaliser: domain.NormaliserSettings{
			Processors: s.getStrings(keyProcessors, defaults.Normaliser.Processors),
			Lemmatizer: s.getLemmatizer(defaults.Normaliser.Lemmatizer),
		},
		MinCount: s.getInt(keyMinCount, defaults.MinCount),
		Classifier: domain.ClassifierSettings{
			MaxIterations:  s.getInt(keyMaxIterations, defaults.Classifier.MaxIterations),
			Regularization: s.getFloat(keyRegularization, defaults.Classifier.Regularization),
			Tolerance:      s.getFloat(keyTolerance, defaults.Classifier.Tolerance),
		},
		RecordHistory: s.getBool(keyHistoryEnabled, defaults.RecordHistory),
	}

	return settings, nil
}

// Save persists pipeline settings.
func (s *SettingsService) Save(settings *domain.PipelineSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	values := []struct {
		key   string
		value any
	}{
		{keyCorpusSource, settings.Corpus.Source.String()},
		{keyCorpusPath, settings.Corpus.Path},
		{keyCorpusDatabase, settings.Corpus.Database},
		{keySeed, int64(settings.Seed)},
		{keyTestRatio, settings.TestRatio},
		{keySamples, settings.Samples},
		{keyProcessors, settings.Normaliser.Processors},
		{keyLemmatizer, settings.Normaliser.Lemmatizer.String()},
		{keyMinCount, settings.MinCount},
		{keyMaxIterations, settings.Classifier.MaxIterations},
		{keyRegularization, settings.Classifier.Regularization},
		{keyTolerance, settings.Classifier.Tolerance},
		{keyHistoryEnabled, settings.RecordHistory},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Validate checks if current settings can drive a run.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return ValidateSettings(settings)
}

// ValidateSettings checks settings for values a run cannot use.
func ValidateSettings(settings *domain.PipelineSettings) error {
	if !settings.Corpus.Source.IsValid() {
		return fmt.Errorf("%w: unknown corpus source %q", domain.ErrInvalidInput, settings.Corpus.Source)
	}
	if settings.TestRatio <= 0 || settings.TestRatio >= 1 {
		return fmt.Errorf("%w: test ratio must be between 0 and 1, got %g", domain.ErrInvalidInput, settings.TestRatio)
	}
	if settings.Samples < 0 {
		return fmt.Errorf("%w: sample count must not be negative, got %d", domain.ErrInvalidInput, settings.Samples)
	}
	if settings.MinCount < 1 {
		return fmt.Errorf("%w: vectorizer min count must be at least 1, got %d", domain.ErrInvalidInput, settings.MinCount)
	}
	if settings.Classifier.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d",
			domain.ErrInvalidInput, settings.Classifier.MaxIterations)
	}
	if settings.Classifier.Regularization <= 0 {
		return fmt.Errorf("%w: regularization must be positive, got %g",
			domain.ErrInvalidInput, settings.Classifier.Regularization)
	}
	if settings.Classifier.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", domain.ErrInvalidInput, settings.Classifier.Tolerance)
	}
	if !settings.Normaliser.Lemmatizer.IsValid() {
		return fmt.Errorf("%w: unknown lemmatizer %q", domain.ErrInvalidInput, settings.Normaliser.Lemmatizer)
	}
	known := make(map[string]bool)
	for _, name := range domain.DefaultProcessors() {
		known[name] = true
	}
	for _, name := range settings.Normaliser.Processors {
		if !known[name] {
			return fmt.Errorf("%w: unknown processor %q", domain.ErrInvalidInput, name)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.PipelineSettings {
	return domain.DefaultPipelineSettings()
}

// ConfigPath returns where settings are read from.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// ProcessorConfigs returns per-processor options keyed by processor name,
// read from keys such as normaliser.alpha.min_length. The lemmatize
// processor always receives the configured lemmatizer.
func (s *SettingsService) ProcessorConfigs(settings *domain.PipelineSettings) map[string]map[string]any {
	cfgs := make(map[string]map[string]any)

	for name, keys := range processorConfigKeys {
		for _, key := range keys {
			if val, exists := s.configStore.Get(processorConfigPrefix + name + "." + key); exists {
				if cfgs[name] == nil {
					cfgs[name] = make(map[string]any)
				}
				cfgs[name][key] = val
			}
		}
	}

	cfgs["lemmatize"] = map[string]any{"lemmatizer": settings.Normaliser.Lemmatizer.String()}
	return cfgs
}

// Helper methods for reading config with defaults. A value of the wrong
// type reads as absent.

func (s *SettingsService) lookup(key string) any {
	val, _ := s.configStore.Get(key)
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if v, ok := configvalue.Int(s.lookup(key)); ok {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if v, ok := configvalue.Float(s.lookup(key)); ok {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if v, ok := configvalue.Bool(s.lookup(key)); ok {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	if v, ok := configvalue.Strings(s.lookup(key)); ok && len(v) > 0 {
		return v
	}
	return defaultVal
}

// getSeed reads the seed. Save stores it as a bit-cast int64 since TOML
// integers are signed, so a negative int64 is a seed above MaxInt64.
func (s *SettingsService) getSeed(defaultVal uint64) uint64 {
	val := s.lookup(keySeed)
	if n, ok := val.(int64); ok {
		return uint64(n)
	}
	if n, ok := configvalue.Uint64(val); ok {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getCorpusSource(defaultVal domain.CorpusSourceType) domain.CorpusSourceType {
	val, _ := configvalue.String(s.lookup(keyCorpusSource))
	if val == "" {
		return defaultVal
	}
	source := domain.CorpusSourceType(val)
	if !source.IsValid() {
		return defaultVal
	}
	return source
}

func (s *SettingsService) getLemmatizer(defaultVal domain.LemmatizerType) domain.LemmatizerType {
	val, _ := configvalue.String(s.lookup(keyLemmatizer))
	if val == "" {
		return defaultVal
	}
	lemmatizer := domain.LemmatizerType(val)
	if !lemmatizer.IsValid() {
		return defaultVal
	}
	return lemmatizer
}
