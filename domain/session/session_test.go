package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mostest/domain/descriptor"
	"mostest/domain/trial"
	"mostest/internal/errors"
)

// fakePersister records bundles in memory.
type fakePersister struct {
	bundles []trial.ResultBundle
	count   int
	failing bool
}

func (p *fakePersister) Persist(ctx context.Context, bundle trial.ResultBundle) error {
	if p.failing {
		return fmt.Errorf("disk full")
	}
	p.bundles = append(p.bundles, bundle)
	return nil
}

func (p *fakePersister) Count(ctx context.Context) (int, error) {
	return p.count, nil
}

func intPtr(n int) *int { return &n }

func newTestMachine(trials []trial.Spec, persister Persister, maxParticipants int) *Machine {
	locale := descriptor.English()
	return NewMachine(
		descriptor.DefaultRegistry(locale),
		func() []trial.Spec { return append([]trial.Spec(nil), trials...) },
		persister,
		locale,
		maxParticipants,
	)
}

func cmosTrials(n int) []trial.Spec {
	trials := make([]trial.Spec, n)
	for i := range trials {
		trials[i] = trial.Spec{
			Type:         trial.TypeCMOS,
			Reference:    fmt.Sprintf("a/u%d.wav", i),
			Target:       fmt.Sprintf("b/u%d.wav", i),
			RefSystem:    "sys_a",
			TargetSystem: "sys_b",
		}
	}
	return trials
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	invalid := []string{"", "user", "user@", "@example.com", "user@example", "user @example.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestStartIdentity(t *testing.T) {
	machine := newTestMachine(cmosTrials(2), &fakePersister{}, 0)
	ctx := context.Background()

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := machine.Start(ctx, "not-an-email", "", nil)
		if !errors.HasCode(err, errors.CodeInvalidIdentity) {
			t.Errorf("expected INVALID_IDENTITY, got %v", err)
		}
	})

	t.Run("accepts valid email", func(t *testing.T) {
		s, err := machine.Start(ctx, "user@example.com", "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if s.Identity != "user@example.com" {
			t.Errorf("Identity = %q", s.Identity)
		}
		if s.State() != InProgress {
			t.Errorf("State = %q, want %q", s.State(), InProgress)
		}
		if s.Len() != 2 {
			t.Errorf("Len = %d, want 2", s.Len())
		}
		if s.Token == "" {
			t.Error("session has no token")
		}
	})

	t.Run("external id wins over email", func(t *testing.T) {
		s, err := machine.Start(ctx, "ignored", "PROLIFIC123", nil)
		if err != nil {
			t.Fatal(err)
		}
		if s.Identity != "PROLIFIC123" {
			t.Errorf("Identity = %q, want PROLIFIC123", s.Identity)
		}
	})

	t.Run("distinct sessions get distinct tokens", func(t *testing.T) {
		a, _ := machine.Start(ctx, "a@example.com", "", nil)
		b, _ := machine.Start(ctx, "b@example.com", "", nil)
		if a.Token == b.Token {
			t.Error("token collision between sessions")
		}
	})
}

func TestStartParticipantCap(t *testing.T) {
	persister := &fakePersister{count: 3}
	machine := newTestMachine(cmosTrials(1), persister, 3)

	_, err := machine.Start(context.Background(), "user@example.com", "", nil)
	if !errors.HasCode(err, errors.CodeStudyFull) {
		t.Errorf("expected STUDY_FULL, got %v", err)
	}

	// Cap zero disables the check entirely.
	uncapped := newTestMachine(cmosTrials(1), persister, 0)
	if _, err := uncapped.Start(context.Background(), "user@example.com", "", nil); err != nil {
		t.Errorf("uncapped start failed: %v", err)
	}
}

func TestSubmitRejections(t *testing.T) {
	machine := newTestMachine(cmosTrials(2), &fakePersister{}, 0)
	ctx := context.Background()
	s, err := machine.Start(ctx, "user@example.com", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("playback incomplete", func(t *testing.T) {
		_, err := s.Submit(ctx, intPtr(2), nil)
		if !errors.HasCode(err, errors.CodeIncompletePlayback) {
			t.Errorf("expected INCOMPLETE_PLAYBACK, got %v", err)
		}
		if s.Cursor() != 0 {
			t.Errorf("rejected submission moved the cursor to %d", s.Cursor())
		}
	})

	t.Run("reference alone is not enough", func(t *testing.T) {
		s.MarkPlayed(SlotReference)
		_, err := s.Submit(ctx, intPtr(2), nil)
		if !errors.HasCode(err, errors.CodeIncompletePlayback) {
			t.Errorf("expected INCOMPLETE_PLAYBACK, got %v", err)
		}
	})

	t.Run("missing score", func(t *testing.T) {
		s.MarkPlayed(SlotTarget)
		_, err := s.Submit(ctx, nil, nil)
		if !errors.HasCode(err, errors.CodeMissingScore) {
			t.Errorf("expected MISSING_SCORE, got %v", err)
		}
	})

	t.Run("score outside comparative scale", func(t *testing.T) {
		_, err := s.Submit(ctx, intPtr(4), nil)
		if !errors.HasCode(err, errors.CodeMissingScore) {
			t.Errorf("expected MISSING_SCORE for score 4 on [-3..3], got %v", err)
		}
		if s.Cursor() != 0 || len(s.Responses()) != 0 {
			t.Error("rejected submission mutated session state")
		}
	})

	t.Run("in-scale score accepted", func(t *testing.T) {
		outcome, err := s.Submit(ctx, intPtr(2), nil)
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if outcome.Completed {
			t.Error("first of two trials reported completion")
		}
		if s.Cursor() != 1 {
			t.Errorf("cursor = %d, want 1", s.Cursor())
		}
	})

	t.Run("playback flags reset on advance", func(t *testing.T) {
		_, err := s.Submit(ctx, intPtr(1), nil)
		if !errors.HasCode(err, errors.CodeIncompletePlayback) {
			t.Errorf("expected INCOMPLETE_PLAYBACK after advance, got %v", err)
		}
	})
}

func TestSessionCompletionPersistsOnce(t *testing.T) {
	persister := &fakePersister{}
	machine := newTestMachine(cmosTrials(2), persister, 0)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	machine.SetClock(func() time.Time { return fixed })

	ctx := context.Background()
	s, err := machine.Start(ctx, "user@example.com", "", map[string]string{"STUDY_ID": "s1"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		s.MarkPlayed(SlotReference)
		s.MarkPlayed(SlotTarget)
		outcome, err := s.Submit(ctx, intPtr(-1), nil)
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if (i == 1) != outcome.Completed {
			t.Errorf("trial %d: Completed = %v", i, outcome.Completed)
		}
	}

	if s.State() != Completed {
		t.Fatalf("State = %q, want %q", s.State(), Completed)
	}
	if len(persister.bundles) != 1 {
		t.Fatalf("persisted %d bundles, want exactly 1", len(persister.bundles))
	}

	bundle := persister.bundles[0]
	if bundle.UserID != "user@example.com" {
		t.Errorf("UserID = %q", bundle.UserID)
	}
	if bundle.Timestamp != fixed.Format(time.RFC3339) {
		t.Errorf("Timestamp = %q", bundle.Timestamp)
	}
	if len(bundle.Results) != 2 {
		t.Fatalf("bundle has %d results, want 2", len(bundle.Results))
	}
	record := bundle.Results[0]
	if record.Score == nil || *record.Score != -1 {
		t.Errorf("stored score = %v, want -1", record.Score)
	}
	if record.TargetSystem != "sys_b" || record.RefSystem != "sys_a" {
		t.Errorf("system labels lost: %+v", record)
	}
	if record.URLParams["STUDY_ID"] != "s1" {
		t.Errorf("url params lost: %v", record.URLParams)
	}

	// The cursor has run off the end and further submissions are refused.
	if _, err := s.Submit(ctx, intPtr(1), nil); err == nil {
		t.Error("submission on a completed session succeeded")
	}
	if len(persister.bundles) != 1 {
		t.Error("completed session persisted again")
	}
}

func TestSubmitPersistFailure(t *testing.T) {
	persister := &fakePersister{failing: true}
	machine := newTestMachine(cmosTrials(1), persister, 0)
	ctx := context.Background()
	s, err := machine.Start(ctx, "user@example.com", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	s.MarkPlayed(SlotReference)
	s.MarkPlayed(SlotTarget)
	outcome, err := s.Submit(ctx, intPtr(0), nil)
	if !errors.HasCode(err, errors.CodePersistFailure) {
		t.Errorf("expected PERSIST_FAILURE, got %v", err)
	}
	if !outcome.Completed {
		t.Error("completion flag should survive a persist failure")
	}
}

func TestSubmitEMOSRequiresBothScores(t *testing.T) {
	trials := []trial.Spec{{
		Type:             trial.TypeEMOS,
		Target:           "edited/u0.wav",
		System:           "editor",
		EditedTranscript: "hello world",
	}}
	machine := newTestMachine(trials, &fakePersister{}, 0)
	ctx := context.Background()
	s, err := machine.Start(ctx, "user@example.com", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	s.MarkPlayed(SlotTarget)

	if _, err := s.Submit(ctx, intPtr(4), nil); !errors.HasCode(err, errors.CodeMissingScore) {
		t.Errorf("expected MISSING_SCORE without editing score, got %v", err)
	}
	if _, err := s.Submit(ctx, intPtr(4), intPtr(5)); !errors.HasCode(err, errors.CodeMissingScore) {
		t.Errorf("expected MISSING_SCORE for editing score 5 on [0..3], got %v", err)
	}

	outcome, err := s.Submit(ctx, intPtr(4), intPtr(2))
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Completed {
		t.Error("single-trial session did not complete")
	}

	record := s.Responses()[0]
	if record.Score != nil {
		t.Error("editing trials must not carry a generic score")
	}
	if record.NaturalnessScore == nil || *record.NaturalnessScore != 4 {
		t.Errorf("naturalness score = %v, want 4", record.NaturalnessScore)
	}
	if record.EditingScore == nil || *record.EditingScore != 2 {
		t.Errorf("editing score = %v, want 2", record.EditingScore)
	}
	if record.EditedTranscript != "hello world" {
		t.Errorf("transcript = %q", record.EditedTranscript)
	}
	if record.TargetSystem != "editor" {
		t.Errorf("single-stimulus system label lost: %+v", record)
	}
}

func TestProgress(t *testing.T) {
	machine := newTestMachine(cmosTrials(4), &fakePersister{}, 0)
	ctx := context.Background()
	s, err := machine.Start(ctx, "user@example.com", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Progress(); got != "Progress: 0/4 (0%)" {
		t.Errorf("Progress() = %q", got)
	}
	s.MarkPlayed(SlotReference)
	s.MarkPlayed(SlotTarget)
	if _, err := s.Submit(ctx, intPtr(3), nil); err != nil {
		t.Fatal(err)
	}
	if got := s.Progress(); got != "Progress: 1/4 (25%)" {
		t.Errorf("Progress() = %q", got)
	}
}
