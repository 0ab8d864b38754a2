package session

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"mostest/domain/descriptor"
	"mostest/domain/trial"
	"mostest/internal/errors"
)

// State is the lifecycle phase of one rating session.
type State string

const (
	Unidentified State = "unidentified"
	InProgress   State = "in_progress"
	Completed    State = "completed"
)

// Slot names an audio slot on the current page.
type Slot string

const (
	SlotReference Slot = "reference"
	SlotTarget    Slot = "target"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s is a syntactically valid email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Persister is the durable sink for finished sessions. Implemented by
// adapters/results.
type Persister interface {
	Persist(ctx context.Context, bundle trial.ResultBundle) error
	Count(ctx context.Context) (int, error)
}

// Machine holds the read-only collaborators shared by every session:
// descriptor registry, sampler, persister and locale table. Session state
// itself is never stored here; each participant gets their own *Session.
type Machine struct {
	registry        *descriptor.Registry
	sample          func() []trial.Spec
	persister       Persister
	locale          descriptor.Locale
	maxParticipants int
	now             func() time.Time
}

// NewMachine wires a session machine. sample is invoked once per session
// start and must return a fresh sequence each time. maxParticipants 0
// disables the participant cap.
func NewMachine(registry *descriptor.Registry, sample func() []trial.Spec, persister Persister, locale descriptor.Locale, maxParticipants int) *Machine {
	return &Machine{
		registry:        registry,
		sample:          sample,
		persister:       persister,
		locale:          locale,
		maxParticipants: maxParticipants,
		now:             time.Now,
	}
}

// SetClock overrides the timestamp source. Test hook.
func (m *Machine) SetClock(now func() time.Time) { m.now = now }

// Session carries all per-participant state: the sampled trial sequence, a
// cursor, accumulated responses and playback flags. One outstanding
// submission is processed at a time; mu serializes them.
type Session struct {
	Token     string
	Identity  string
	URLParams map[string]string

	mu           sync.Mutex
	machine      *Machine
	state        State
	trials       []trial.Spec
	cursor       int
	responses    []trial.ResponseRecord
	refPlayed    bool
	targetPlayed bool
	persisted    bool
}

// Outcome describes the result of one accepted submission.
type Outcome struct {
	Completed bool
	Progress  string
}

// Start validates an identity and opens a session: the trial sequence is
// materialized by one fresh sampler draw and the cursor reset to zero.
// externalID (e.g. a Prolific PID) wins over email; without one, email must
// be syntactically valid.
func (m *Machine) Start(ctx context.Context, email, externalID string, urlParams map[string]string) (*Session, error) {
	if m.maxParticipants > 0 {
		count, err := m.persister.Count(ctx)
		if err != nil {
			return nil, errors.Wrap(errors.StoreError("could not check participant count"), err.Error())
		}
		if count >= m.maxParticipants {
			return nil, errors.New(errors.CodeStudyFull, m.locale.StudyFull)
		}
	}

	identity := externalID
	if identity == "" {
		if !IsValidEmail(email) {
			return nil, errors.InvalidIdentity("please provide a valid email address or participant id")
		}
		identity = email
	}

	return &Session{
		Token:     uuid.NewString(),
		Identity:  identity,
		URLParams: urlParams,
		machine:   m,
		state:     InProgress,
		trials:    m.sample(),
	}, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cursor returns the index of the trial currently presented.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Len returns the session's trial count.
func (s *Session) Len() int { return len(s.trials) }

// Responses returns a copy of the accepted responses so far.
func (s *Session) Responses() []trial.ResponseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]trial.ResponseRecord(nil), s.responses...)
}

// Current returns the descriptor for the trial under the cursor, or nil
// once the session has completed.
func (s *Session) Current() (descriptor.Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() (descriptor.Descriptor, error) {
	if s.cursor >= len(s.trials) {
		return nil, nil
	}
	return s.machine.registry.New(s.trials[s.cursor])
}

// MarkPlayed records a playback-finished notification for one slot. Flags
// reset on every trial advance.
func (s *Session) MarkPlayed(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch slot {
	case SlotReference:
		s.refPlayed = true
	case SlotTarget:
		s.targetPlayed = true
	}
}

// Played reports the playback flags for the current trial.
func (s *Session) Played() (ref, target bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refPlayed, s.targetPlayed
}

// Progress renders the "k of N" progress line.
func (s *Session) Progress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

func (s *Session) progressLocked() string {
	total := len(s.trials)
	if total == 0 {
		return "Progress: 0/0"
	}
	return fmt.Sprintf("Progress: %d/%d (%d%%)", s.cursor, total, s.cursor*100/total)
}

// Submit processes one rating. A submission is accepted only when every
// required audio slot has been played to completion and the score parses
// into the current descriptor's scale (emos pages additionally require a
// valid editing score). A rejected submission leaves cursor and responses
// untouched and returns a recoverable error whose message re-prompts the
// participant. Acceptance appends a raw ResponseRecord (swap correction is
// deferred to the analyzer), advances the cursor and resets the playback
// flags; reaching the end persists the bundle exactly once.
func (s *Session) Submit(ctx context.Context, score, editingScore *int) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != InProgress {
		return Outcome{}, errors.New(errors.CodeInternalError, "session is not in progress")
	}

	desc, err := s.currentLocked()
	if err != nil {
		return Outcome{}, err
	}
	if desc == nil {
		return Outcome{}, errors.New(errors.CodeInternalError, "no trial under cursor")
	}

	loc := s.machine.locale
	if !s.targetPlayed || (desc.NeedsReference() && !s.refPlayed) {
		return Outcome{}, errors.IncompletePlayback(s.progressLocked() + " - " + loc.PlaybackPrompt)
	}
	if score == nil {
		return Outcome{}, errors.MissingScore(s.progressLocked() + " - " + loc.ScorePrompt)
	}
	if !desc.Validate(*score) {
		return Outcome{}, errors.MissingScore(fmt.Sprintf("score %d is outside the scale %d..%d", *score, desc.Scale().Min, desc.Scale().Max))
	}

	spec := s.trials[s.cursor]
	targetSystem := spec.TargetSystem
	if targetSystem == "" {
		// Single-stimulus trials carry their system under the bare
		// system key.
		targetSystem = spec.System
	}
	record := trial.ResponseRecord{
		TestType:       spec.Type,
		ReferenceAudio: spec.Reference,
		TargetAudio:    spec.Target,
		RefSystem:      spec.RefSystem,
		TargetSystem:   targetSystem,
		Swap:           spec.Swap,
		URLParams:      s.URLParams,
	}

	if edit, ok := desc.(descriptor.EditFidelity); ok {
		if editingScore == nil {
			return Outcome{}, errors.MissingScore(s.progressLocked() + " - " + loc.ScorePrompt)
		}
		if !edit.ValidateEditing(*editingScore) {
			return Outcome{}, errors.MissingScore(fmt.Sprintf("editing score %d is outside the scale %d..%d", *editingScore, edit.EditingScale().Min, edit.EditingScale().Max))
		}
		record.NaturalnessScore = score
		record.EditingScore = editingScore
		record.EditedTranscript = edit.EditedTranscript()
	} else {
		record.Score = score
	}

	s.responses = append(s.responses, record)
	s.cursor++
	s.refPlayed = false
	s.targetPlayed = false

	if s.cursor >= len(s.trials) {
		s.state = Completed
		if err := s.persistLocked(ctx); err != nil {
			return Outcome{Completed: true, Progress: s.progressLocked()}, err
		}
		return Outcome{Completed: true, Progress: s.progressLocked()}, nil
	}
	return Outcome{Progress: s.progressLocked()}, nil
}

// persistLocked writes the final bundle. Exactly one call per session;
// failure is fatal to the session since the data would otherwise be lost.
func (s *Session) persistLocked(ctx context.Context) error {
	if s.persisted {
		return nil
	}
	bundle := trial.ResultBundle{
		UserID:    s.Identity,
		Timestamp: s.machine.now().Format(time.RFC3339),
		Results:   s.responses,
	}
	if err := s.machine.persister.Persist(ctx, bundle); err != nil {
		return errors.Wrap(errors.PersistFailure("could not save your results"), err.Error())
	}
	s.persisted = true
	return nil
}
