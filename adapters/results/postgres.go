package results

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS result_bundles (
	user_id    TEXT PRIMARY KEY,
	recorded   TIMESTAMPTZ NOT NULL DEFAULT now(),
	bundle     JSONB NOT NULL
)`

// PostgresStore keeps result bundles in a single JSONB-backed table with
// the same last-write-wins semantics as LocalStore: the upsert replaces the
// whole bundle for an identity.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects and ensures the schema exists.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(errors.StoreError("could not connect to results database"), err.Error())
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(errors.StoreError("could not create results table"), err.Error())
	}
	return &PostgresStore{db: db}, nil
}

// Persist upserts one participant's bundle.
func (s *PostgresStore) Persist(ctx context.Context, bundle trial.ResultBundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return errors.Wrap(errors.StoreError("could not encode result bundle"), err.Error())
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO result_bundles (user_id, bundle)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET bundle = EXCLUDED.bundle, recorded = now()`,
		bundle.UserID, payload)
	if err != nil {
		return errors.Wrap(errors.StoreError("could not write result bundle"), err.Error())
	}
	return nil
}

// Load reads one participant's bundle.
func (s *PostgresStore) Load(ctx context.Context, userID string) (trial.ResultBundle, error) {
	var bundle trial.ResultBundle
	var payload []byte
	err := s.db.GetContext(ctx, &payload, `SELECT bundle FROM result_bundles WHERE user_id = $1`, userID)
	if err != nil {
		return bundle, errors.Wrap(errors.StoreError("no results for "+userID), err.Error())
	}
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return bundle, errors.Wrap(errors.StoreError("could not decode result bundle"), err.Error())
	}
	return bundle, nil
}

// List loads every persisted bundle.
func (s *PostgresStore) List(ctx context.Context) ([]trial.ResultBundle, error) {
	var payloads [][]byte
	if err := s.db.SelectContext(ctx, &payloads, `SELECT bundle FROM result_bundles ORDER BY user_id`); err != nil {
		return nil, errors.Wrap(errors.StoreError("could not list result bundles"), err.Error())
	}
	bundles := make([]trial.ResultBundle, 0, len(payloads))
	for _, payload := range payloads {
		var bundle trial.ResultBundle
		if err := json.Unmarshal(payload, &bundle); err != nil {
			return nil, errors.Wrap(errors.StoreError("could not decode result bundle"), err.Error())
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// Count returns the number of persisted bundles.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT count(*) FROM result_bundles`); err != nil {
		return 0, errors.Wrap(errors.StoreError("could not count result bundles"), err.Error())
	}
	return count, nil
}

// Close releases the database handle.
func (s *PostgresStore) Close() error { return s.db.Close() }
