package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// timeLayout is fixed-width so started_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const runColumns = `id, seed, corpus_size, train_size, test_size, vocabulary_size, accuracy,
	iterations, converged, true_negative, false_positive, false_negative, true_positive,
	started_at, duration_ns`

// Save stores a report and its samples, replacing any run with the same ID.
func (s *runStore) Save(ctx context.Context, report *domain.Report) error {
	if report == nil || report.RunID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c := report.Confusion
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed = excluded.seed,
			corpus_size = excluded.corpus_size,
			train_size = excluded.train_size,
			test_size = excluded.test_size,
			vocabulary_size = excluded.vocabulary_size,
			accuracy = excluded.accuracy,
			iterations = excluded.iterations,
			converged = excluded.converged,
			true_negative = excluded.true_negative,
			false_positive = excluded.false_positive,
			false_negative = excluded.false_negative,
			true_positive = excluded.true_positive,
			started_at = excluded.started_at,
			duration_ns = excluded.duration_ns
	`, report.RunID, int64(report.Seed), report.CorpusSize, report.TrainSize, report.TestSize,
		report.VocabularySize, report.Accuracy, report.Iterations, boolToInt(report.Converged),
		c.Count(domain.LabelNegative, domain.LabelNegative),
		c.Count(domain.LabelNegative, domain.LabelPositive),
		c.Count(domain.LabelPositive, domain.LabelNegative),
		c.Count(domain.LabelPositive, domain.LabelPositive),
		report.StartedAt.UTC().Format(timeLayout), int64(report.Duration))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_samples WHERE run_id = ?", report.RunID); err != nil {
		return fmt.Errorf("clearing run samples: %w", err)
	}
	for i, sample := range report.Samples {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_samples (run_id, position, doc_index, text, actual, predicted)
			VALUES (?, ?, ?, ?, ?, ?)
		`, report.RunID, i, sample.Index, sample.Text, int(sample.Actual), int(sample.Predicted))
		if err != nil {
			return fmt.Errorf("saving run sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a report by run ID.
func (s *runStore) Get(ctx context.Context, runID string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, runID)

	report, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	samples, err := s.samples(ctx, runID)
	if err != nil {
		return nil, err
	}
	report.Samples = samples
	return report, nil
}

// List returns the most recent reports, newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Report, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var reports []domain.Report //nolint:prealloc // size unknown from query
	for rows.Next() {
		report, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range reports {
		samples, err := s.samples(ctx, reports[i].RunID)
		if err != nil {
			return nil, err
		}
		reports[i].Samples = samples
	}

	return reports, nil
}

func (s *runStore) samples(ctx context.Context, runID string) ([]domain.Sample, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT doc_index, text, actual, predicted
		FROM run_samples WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run samples: %w", err)
	}
	defer rows.Close()

	var samples []domain.Sample //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sample domain.Sample
		var actual, predicted int
		if err := rows.Scan(&sample.Index, &sample.Text, &actual, &predicted); err != nil {
			return nil, fmt.Errorf("scanning run sample: %w", err)
		}
		sample.Actual = domain.Label(actual)
		sample.Predicted = domain.Label(predicted)
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run samples: %w", err)
	}

	return samples, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Report, error) {
	var (
		report     domain.Report
		seed       int64
		converged  int
		tn, fp     int
		fn, tp     int
		startedAt  string
		durationNs int64
	)

	err := row.Scan(&report.RunID, &seed, &report.CorpusSize, &report.TrainSize, &report.TestSize,
		&report.VocabularySize, &report.Accuracy, &report.Iterations, &converged,
		&tn, &fp, &fn, &tp, &startedAt, &durationNs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	report.Seed = uint64(seed)
	report.Converged = converged != 0
	report.Confusion = domain.ConfusionMatrix{{tn, fp}, {fn, tp}}
	report.Duration = time.Duration(durationNs)
	report.StartedAt, err = time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing run start time: %w", err)
	}

	return &report, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
