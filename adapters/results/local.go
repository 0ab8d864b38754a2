package results

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

// LocalStore writes one results/<user_id>_results.json file per
// participant. Writes across distinct participants never collide; a repeat
// write for the same identity replaces the file wholesale.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the store and its destination directory.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.StoreError("could not create results directory"), err.Error())
	}
	return &LocalStore{dir: dir}, nil
}

// Persist serializes the bundle to its per-participant file, overwriting
// any previous bundle for that identity.
func (s *LocalStore) Persist(ctx context.Context, bundle trial.ResultBundle) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return errors.Wrap(errors.StoreError("could not encode result bundle"), err.Error())
	}
	if err := os.WriteFile(s.path(bundle.UserID), data, 0644); err != nil {
		return errors.Wrap(errors.StoreError("could not write result bundle"), err.Error())
	}
	return nil
}

// Load reads one participant's bundle.
func (s *LocalStore) Load(ctx context.Context, userID string) (trial.ResultBundle, error) {
	var bundle trial.ResultBundle
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return bundle, errors.StoreError("no results for " + userID)
		}
		return bundle, errors.Wrap(errors.StoreError("could not read result bundle"), err.Error())
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		return bundle, errors.Wrap(errors.StoreError("could not decode result bundle"), err.Error())
	}
	return bundle, nil
}

// List loads every persisted bundle in the directory.
func (s *LocalStore) List(ctx context.Context) ([]trial.ResultBundle, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*_results.json"))
	if err != nil {
		return nil, errors.Wrap(errors.StoreError("could not list results directory"), err.Error())
	}
	bundles := make([]trial.ResultBundle, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrap(errors.StoreError("could not read "+p), err.Error())
		}
		var bundle trial.ResultBundle
		if err := json.Unmarshal(data, &bundle); err != nil {
			return nil, errors.Wrap(errors.StoreError("could not decode "+p), err.Error())
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// Count returns the number of persisted bundles.
func (s *LocalStore) Count(ctx context.Context) (int, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*_results.json"))
	if err != nil {
		return 0, errors.Wrap(errors.StoreError("could not list results directory"), err.Error())
	}
	return len(paths), nil
}

// path maps a user id to its deterministic result file. Path separators in
// the identity are flattened so the key stays inside the directory.
func (s *LocalStore) path(userID string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(userID)
	return filepath.Join(s.dir, safe+"_results.json")
}
