package trial

// Type tags a trial with the listening-test variant it belongs to. The
// spellings match the catalog file format.
type Type string

const (
	TypeSMOS            Type = "smos"
	TypeSMOSInstruction Type = "smos_instruction"
	TypeCMOS            Type = "cmos"
	TypeCMOSInstruction Type = "cmos_instruction"
	TypeAttention       Type = "attention"
	TypeQMOS            Type = "qmos"
	TypeQMOSInstruction Type = "qmos_instruction"
	TypeNMOS            Type = "nmos"
	TypeNMOSInstruction Type = "nmos_instruction"
	TypeEMOS            Type = "emos"
	TypeEMOSInstruction Type = "emos_instruction"
)

// BucketOrder is the stable order in which type buckets are concatenated
// into a session sequence. Attention checks are interleaved afterwards and
// have no bucket of their own.
var BucketOrder = []Type{TypeSMOS, TypeCMOS, TypeQMOS, TypeNMOS, TypeEMOS}

// Known reports whether t is one of the closed set of trial types.
func (t Type) Known() bool {
	switch t {
	case TypeSMOS, TypeSMOSInstruction, TypeCMOS, TypeCMOSInstruction,
		TypeAttention, TypeQMOS, TypeQMOSInstruction,
		TypeNMOS, TypeNMOSInstruction, TypeEMOS, TypeEMOSInstruction:
		return true
	}
	return false
}

// IsInstruction reports whether t is a non-scored illustrative variant.
func (t Type) IsInstruction() bool {
	switch t {
	case TypeSMOSInstruction, TypeCMOSInstruction, TypeQMOSInstruction,
		TypeNMOSInstruction, TypeEMOSInstruction:
		return true
	}
	return false
}

// Scored returns the scored counterpart of an instruction type. Scored
// types map to themselves.
func (t Type) Scored() Type {
	switch t {
	case TypeSMOSInstruction:
		return TypeSMOS
	case TypeCMOSInstruction:
		return TypeCMOS
	case TypeQMOSInstruction:
		return TypeQMOS
	case TypeNMOSInstruction:
		return TypeNMOS
	case TypeEMOSInstruction:
		return TypeEMOS
	}
	return t
}

// Spec describes one candidate trial as loaded from the catalog. Immutable
// once sampled into a session.
type Spec struct {
	Type   Type   `json:"type"`
	Target string `json:"target"`
	// Reference is empty for reference-free families (qmos/nmos/emos).
	Reference        string `json:"reference,omitempty"`
	RefSystem        string `json:"ref_system,omitempty"`
	TargetSystem     string `json:"target_system,omitempty"`
	System           string `json:"system,omitempty"`
	Swap             bool   `json:"swap,omitempty"`
	EditedTranscript string `json:"edited_transcript,omitempty"`

	// Pass-through metadata from the catalog builders; the core never
	// reads these, the analyzer may.
	RefFilename    string `json:"ref_filename,omitempty"`
	TargetFilename string `json:"target_filename,omitempty"`
	MetalstLine    string `json:"metalst_line,omitempty"`
}

// Level is one selectable option on a rating scale: the stored value plus
// the label shown to the participant.
type Level struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// RatingScale describes the integer scale of one trial family. Levels has
// one entry per step from Min to Max inclusive.
type RatingScale struct {
	Min     int
	Max     int
	Default int
	Levels  []Level
}

// Contains reports whether score lies inside the scale bounds.
func (s RatingScale) Contains(score int) bool {
	return s.Min <= score && score <= s.Max
}

// NewRatingScale builds a scale from per-step labels, pairing labels with
// values Min..Max in order. Panics when the label count does not match the
// step count; scales are static program data, a mismatch is a programming
// error.
func NewRatingScale(min, max, def int, labels []string) RatingScale {
	if len(labels) != max-min+1 {
		panic("rating scale labels must cover every step from min to max")
	}
	levels := make([]Level, len(labels))
	for i, label := range labels {
		levels[i] = Level{Value: min + i, Label: label}
	}
	return RatingScale{Min: min, Max: max, Default: def, Levels: levels}
}

// ResponseRecord is one accepted rating, stored raw: the swap correction is
// deferred to the offline analyzer.
type ResponseRecord struct {
	TestType       Type   `json:"test_type"`
	ReferenceAudio string `json:"reference_audio,omitempty"`
	TargetAudio    string `json:"target_audio"`
	RefSystem      string `json:"ref_system,omitempty"`
	TargetSystem   string `json:"target_system,omitempty"`
	Swap           bool   `json:"swap"`

	// Score is set for every family except emos, which records the two
	// dimensions below instead.
	Score            *int              `json:"score,omitempty"`
	NaturalnessScore *int              `json:"naturalness_score,omitempty"`
	EditingScore     *int              `json:"editing_score,omitempty"`
	EditedTranscript string            `json:"edited_transcript,omitempty"`
	URLParams        map[string]string `json:"url_params,omitempty"`
}

// ResultBundle is the durable unit written once per completed session.
type ResultBundle struct {
	UserID    string           `json:"user_id"`
	Timestamp string           `json:"timestamp"`
	Results   []ResponseRecord `json:"results"`
}
