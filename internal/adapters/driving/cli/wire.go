package cli

import (
	"fmt"

	"github.com/custodia-labs/sentiment-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sentiment-cli/internal/adapters/driven/language"
	"github.com/custodia-labs/sentiment-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sentiment-cli/internal/classifiers/logistic"
	"github.com/custodia-labs/sentiment-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentiment-cli/internal/core/services"
	"github.com/custodia-labs/sentiment-cli/internal/logger"
	"github.com/custodia-labs/sentiment-cli/internal/normalisers/review"
	"github.com/custodia-labs/sentiment-cli/internal/postprocessors"
	"github.com/custodia-labs/sentiment-cli/internal/vectorizer"
)

// Services holds the driving services used by one command invocation.
type Services struct {
	Settings driving.SettingsService
	Pipeline driving.PipelineService
	History  driving.HistoryService
	Corpus   driving.CorpusService

	closers []func() error
}

// Close releases any resources opened while wiring.
func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	for _, c := range s.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// wireOptions carries command line overrides into wiring.
type wireOptions struct {
	configDir  string
	corpusPath string
	source     string

	// needStore opens the SQLite store even when neither the corpus
	// source nor history recording require it.
	needStore bool
}

// openServices builds the services for a command. Tests replace it.
var openServices = wireServices

func wireServices(opts wireOptions) (*Services, error) {
	configStore, err := file.NewConfigStore(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if opts.corpusPath != "" {
		settings.Corpus.Path = opts.corpusPath
	}
	if opts.source != "" {
		settings.Corpus.Source = domain.CorpusSourceType(opts.source)
		if !settings.Corpus.Source.IsValid() {
			return nil, fmt.Errorf("%w: unknown corpus source %q", domain.ErrInvalidInput, opts.source)
		}
	}

	svc := &Services{Settings: settingsService}

	var (
		source   driven.CorpusSource
		writer   driven.CorpusWriter
		runStore driven.RunStore
	)

	if opts.needStore || settings.RecordHistory || settings.Corpus.Source == domain.CorpusSourceSQLite {
		store, err := sqlite.NewStore(filesystem.ResolvePath(settings.Corpus.Database))
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		svc.closers = append(svc.closers, store.Close)
		logger.Debug("Opened database %s", store.Path())

		writer = store.CorpusStore()
		runStore = store.RunStore()
		if settings.Corpus.Source == domain.CorpusSourceSQLite {
			source = store.CorpusStore()
		}
	}

	if source == nil {
		root := settings.Corpus.Path
		if root == "" {
			root = filesystem.DefaultRoot()
		}
		source = filesystem.New(filesystem.ResolvePath(root))
	}
	logger.Debug("Corpus source: %s", source.Name())

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	chain, err := registry.BuildPipeline(settings.Normaliser.Processors, settingsService.ProcessorConfigs(settings))
	if err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("build normaliser: %w", err)
	}
	logger.Debug("Token processors: %v", chain.Names())

	classifier := logistic.New(
		logistic.WithRegularization(settings.Classifier.Regularization),
		logistic.WithTolerance(settings.Classifier.Tolerance),
	)

	svc.Pipeline = services.NewPipelineService(
		*settings,
		source,
		language.NewEnglish(),
		review.New(chain),
		vectorizer.New(vectorizer.WithMinCount(settings.MinCount)),
		classifier,
		runStore,
	)
	svc.History = services.NewHistoryService(runStore)
	svc.Corpus = services.NewCorpusService(source, writer, func(dir string) driven.CorpusSource {
		return filesystem.New(filesystem.ResolvePath(dir))
	})

	return svc, nil
}
