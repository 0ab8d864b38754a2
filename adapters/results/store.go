package results

import (
	"context"

	"mostest/domain/trial"
)

// Store is the durable home of finished result bundles, one per
// participant, keyed by user id. Persist always overwrites: last write
// wins, never append.
type Store interface {
	Persist(ctx context.Context, bundle trial.ResultBundle) error
	Load(ctx context.Context, userID string) (trial.ResultBundle, error)
	List(ctx context.Context) ([]trial.ResultBundle, error)
	Count(ctx context.Context) (int, error)
}
