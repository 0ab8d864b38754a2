package analysis

import (
	"path/filepath"
	"strconv"
	"strings"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

// qualityWords maps the no-reference attention vocabulary to scores, for
// pools whose filenames encode the expected answer as a word rather than a
// number (e.g. reference_bad_1.wav).
var qualityWords = map[string]int{
	"bad":       1,
	"poor":      2,
	"fair":      3,
	"good":      4,
	"excellent": 5,
}

// ExpectedAttentionScore extracts the deterministic expected score from an
// attention audio's filename: the trailing underscore-separated token is
// either the integer score itself or a quality word.
func ExpectedAttentionScore(audioPath string) (int, error) {
	base := filepath.Base(audioPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	idx := strings.LastIndex(base, "_")
	if idx < 0 || idx == len(base)-1 {
		return 0, errors.New(errors.CodeInternalError, "attention filename carries no expected score: "+audioPath)
	}
	token := base[idx+1:]
	if score, err := strconv.Atoi(token); err == nil {
		return score, nil
	}
	if score, ok := qualityWords[strings.ToLower(token)]; ok {
		return score, nil
	}
	return 0, errors.New(errors.CodeInternalError, "attention filename carries no expected score: "+audioPath)
}

// BundlePasses reports whether every attention check in a bundle was
// answered with its expected score. A failed check is a data-quality
// signal, not an error: the whole bundle is simply excluded.
func BundlePasses(bundle trial.ResultBundle) bool {
	for _, record := range bundle.Results {
		if record.TestType != trial.TypeAttention {
			continue
		}
		audio := record.ReferenceAudio
		if audio == "" {
			audio = record.TargetAudio
		}
		expected, err := ExpectedAttentionScore(audio)
		if err != nil {
			return false
		}
		if record.Score == nil || *record.Score != expected {
			return false
		}
	}
	return true
}
