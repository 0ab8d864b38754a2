package descriptor

import (
	"mostest/domain/trial"
	"mostest/internal/errors"
)

// FamilyText is the locale-supplied data for one test family: instruction
// markdown for the scored and instruction variants, and the rating scale
// bounds with per-step labels. A locale that leaves Labels empty does not
// offer that family.
type FamilyText struct {
	Scored      string
	Instruction string
	Min         int
	Max         int
	Default     int
	Labels      []string
}

// Defined reports whether the locale supplies this family.
func (f FamilyText) Defined() bool { return len(f.Labels) > 0 }

// Scale builds the family's rating scale from the locale data.
func (f FamilyText) Scale() trial.RatingScale {
	return trial.NewRatingScale(f.Min, f.Max, f.Default, f.Labels)
}

// Locale is a data table, not a code variant: everything that differs
// between languages lives here.
type Locale struct {
	Name              string
	SMOS              FamilyText
	CMOS              FamilyText
	QMOS              FamilyText
	NMOS              FamilyText
	EMOS              FamilyText
	EMOSEditingLabels []string
	Attention         string

	// Participant-facing UI strings.
	PlaybackPrompt string
	ScorePrompt    string
	FinishEmail    string
	FinishExternal string
	StudyFull      string
}

// ByName resolves a built-in locale table.
func ByName(name string) (Locale, error) {
	switch name {
	case "english":
		return English(), nil
	case "finnish":
		return Finnish(), nil
	case "swedish":
		return Swedish(), nil
	}
	return Locale{}, errors.ConfigInvalid("unknown locale: " + name)
}
