package descriptor

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

// Descriptor is the per-trial page abstraction: it knows its instruction
// text, rating scale, audio slots and how to validate a submitted score.
// One descriptor is constructed per presented trial.
type Descriptor interface {
	Type() trial.Type
	// Instructions returns the participant-facing rich text, already
	// rendered from the locale's markdown.
	Instructions() template.HTML
	Scale() trial.RatingScale
	// NeedsReference reports whether the page shows a reference audio
	// slot. False for the reference-free families.
	NeedsReference() bool
	IsInstruction() bool
	Validate(score int) bool
	ReferenceAudio() string
	TargetAudio() string
}

// EditFidelity is the extra surface of emos pages: a second independent
// editing scale and the edited transcript shown to the participant.
type EditFidelity interface {
	EditingScale() trial.RatingScale
	EditedTranscript() string
	ValidateEditing(score int) bool
}

// Factory constructs a descriptor for one sampled trial.
type Factory func(spec trial.Spec) Descriptor

// Registry maps type tags to descriptor factories. Open for extension:
// callers may register new tags without touching existing variants.
type Registry struct {
	factories map[trial.Type]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[trial.Type]Factory)}
}

// Register adds or replaces the factory for a tag.
func (r *Registry) Register(tag trial.Type, factory Factory) {
	r.factories[tag] = factory
}

// New constructs the descriptor for a sampled trial. An unregistered tag is
// a catalog/registry mismatch and must not be silently skipped.
func (r *Registry) New(spec trial.Spec) (Descriptor, error) {
	factory, ok := r.factories[spec.Type]
	if !ok {
		return nil, errors.UnknownTrialType(string(spec.Type))
	}
	return factory(spec), nil
}

// page is the one concrete descriptor. Variants differ only in the data the
// locale table supplies, not in code.
type page struct {
	tag         trial.Type
	spec        trial.Spec
	html        template.HTML
	scale       trial.RatingScale
	needsRef    bool
	instruction bool
}

func (p *page) Type() trial.Type            { return p.tag }
func (p *page) Instructions() template.HTML { return p.html }
func (p *page) Scale() trial.RatingScale    { return p.scale }
func (p *page) NeedsReference() bool        { return p.needsRef && p.spec.Reference != "" }
func (p *page) IsInstruction() bool         { return p.instruction }
func (p *page) Validate(score int) bool     { return p.scale.Contains(score) }
func (p *page) ReferenceAudio() string      { return p.spec.Reference }
func (p *page) TargetAudio() string         { return p.spec.Target }

// emosPage adds the editing dimension and transcript display.
type emosPage struct {
	page
	editingScale trial.RatingScale
}

func (p *emosPage) EditingScale() trial.RatingScale { return p.editingScale }
func (p *emosPage) EditedTranscript() string        { return p.spec.EditedTranscript }
func (p *emosPage) ValidateEditing(score int) bool  { return p.editingScale.Contains(score) }

// DefaultRegistry wires every family the locale defines. Catalogs that
// reference a family the locale leaves undefined fail at descriptor
// construction with UNKNOWN_TRIAL_TYPE rather than rendering a half
// translated page.
func DefaultRegistry(loc Locale) *Registry {
	r := NewRegistry()

	families := []struct {
		scored      trial.Type
		instruction trial.Type
		text        FamilyText
		needsRef    bool
	}{
		{trial.TypeSMOS, trial.TypeSMOSInstruction, loc.SMOS, true},
		{trial.TypeCMOS, trial.TypeCMOSInstruction, loc.CMOS, true},
		{trial.TypeQMOS, trial.TypeQMOSInstruction, loc.QMOS, false},
		{trial.TypeNMOS, trial.TypeNMOSInstruction, loc.NMOS, false},
	}
	for _, fam := range families {
		fam := fam
		if !fam.text.Defined() {
			continue
		}
		scale := fam.text.Scale()
		scoredHTML := renderMarkdown(fam.text.Scored)
		instructionHTML := renderMarkdown(fam.text.Instruction)
		r.Register(fam.scored, func(spec trial.Spec) Descriptor {
			return &page{tag: fam.scored, spec: spec, html: scoredHTML, scale: scale, needsRef: fam.needsRef}
		})
		r.Register(fam.instruction, func(spec trial.Spec) Descriptor {
			return &page{tag: fam.instruction, spec: spec, html: instructionHTML, scale: scale, needsRef: fam.needsRef, instruction: true}
		})
	}

	// Attention checks ride on the cmos scale: reference and target are a
	// known-identical pair and the expected score is encoded in the audio
	// filename for the analyzer.
	if loc.CMOS.Defined() {
		attentionHTML := renderMarkdown(loc.Attention)
		attentionScale := loc.CMOS.Scale()
		r.Register(trial.TypeAttention, func(spec trial.Spec) Descriptor {
			return &page{tag: trial.TypeAttention, spec: spec, html: attentionHTML, scale: attentionScale, needsRef: true}
		})
	}

	if loc.EMOS.Defined() {
		emosScale := loc.EMOS.Scale()
		editingScale := trial.NewRatingScale(0, 3, 1, loc.EMOSEditingLabels)
		emosHTML := renderMarkdown(loc.EMOS.Scored)
		emosInstructionHTML := renderMarkdown(loc.EMOS.Instruction)
		r.Register(trial.TypeEMOS, func(spec trial.Spec) Descriptor {
			return &emosPage{
				page:         page{tag: trial.TypeEMOS, spec: spec, html: emosHTML, scale: emosScale},
				editingScale: editingScale,
			}
		})
		r.Register(trial.TypeEMOSInstruction, func(spec trial.Spec) Descriptor {
			return &emosPage{
				page:         page{tag: trial.TypeEMOSInstruction, spec: spec, html: emosInstructionHTML, scale: emosScale, instruction: true},
				editingScale: editingScale,
			}
		})
	}

	return r
}

func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}
