package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

func score(n int) *int { return &n }

func bundleFor(userID string, scores ...int) trial.ResultBundle {
	records := make([]trial.ResponseRecord, len(scores))
	for i, n := range scores {
		records[i] = trial.ResponseRecord{
			TestType:     trial.TypeCMOS,
			TargetAudio:  "b/u.wav",
			TargetSystem: "sys_b",
			Score:        score(n),
		}
	}
	return trial.ResultBundle{
		UserID:    userID,
		Timestamp: "2026-03-14T15:09:26Z",
		Results:   records,
	}
}

func TestLocalStoreRoundtrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := store.Persist(ctx, bundleFor("user@example.com", 1, -2)); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load(ctx, "user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.UserID != "user@example.com" || len(loaded.Results) != 2 {
		t.Errorf("roundtrip mangled the bundle: %+v", loaded)
	}
	if loaded.Results[1].Score == nil || *loaded.Results[1].Score != -2 {
		t.Errorf("score lost in roundtrip: %+v", loaded.Results[1])
	}
}

func TestLocalStoreLastWriteWins(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := store.Persist(ctx, bundleFor("user@example.com", 1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	if err := store.Persist(ctx, bundleFor("user@example.com", -3)); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load(ctx, "user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Results) != 1 {
		t.Errorf("expected the second bundle to replace the first, got %d results", len(loaded.Results))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "user@example.com_results.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestLocalStoreListAndCount(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, uid := range []string{"a@example.com", "b@example.com", "PROLIFIC123"} {
		if err := store.Persist(ctx, bundleFor(uid, 1)); err != nil {
			t.Fatal(err)
		}
	}

	bundles, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(bundles) != 3 {
		t.Errorf("List returned %d bundles, want 3", len(bundles))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}
}

func TestLocalStoreSanitizesIdentity(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := store.Persist(ctx, bundleFor("../evil/user", 1)); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("bundle escaped the results directory: %v", entries)
	}
	if filepath.Dir(filepath.Join(dir, entries[0].Name())) != dir {
		t.Errorf("bundle written outside %s", dir)
	}
}

func TestLocalStoreLoadMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.Load(context.Background(), "nobody@example.com")
	if !errors.HasCode(err, errors.CodeStoreError) {
		t.Errorf("expected STORE_ERROR for missing bundle, got %v", err)
	}
}
