package sampler

import (
	"log"
	"math"
	"math/rand"
	"sort"
	"time"

	"mostest/domain/catalog"
	"mostest/domain/trial"
)

// Policy holds the sampling knobs for one deployment.
type Policy struct {
	// SamplePerGroup caps how many trials one comparison group may
	// contribute. Groups smaller than the cap contribute everything.
	SamplePerGroup int
	// NumAttention is how many attention checks to interleave.
	NumAttention int
	// WindowLo/WindowHi bound the fraction of the final sequence inside
	// which attention checks may land.
	WindowLo float64
	WindowHi float64
}

// Sampler materializes per-session trial sequences from a catalog. Safe for
// concurrent use only when each call gets its own *rand.Rand; the server
// constructs one Sampler per session start.
type Sampler struct {
	policy       Policy
	attention    []trial.Spec
	instructions []trial.Spec
	rng          *rand.Rand
}

// New creates a sampler. A nil rng gets a time-seeded source; tests inject
// a fixed seed.
func New(policy Policy, attention, instructions []trial.Spec, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{
		policy:       policy,
		attention:    attention,
		instructions: instructions,
		rng:          rng,
	}
}

// Sample draws a fresh session sequence: a bounded random subset per
// comparison group, shuffled within each type bucket, instruction trials
// prepended to their buckets, attention checks interleaved inside the
// configured window. The returned sequence is fixed for one session.
func (s *Sampler) Sample(cat catalog.Catalog) []trial.Spec {
	buckets := make(map[trial.Type][]trial.Spec)

	for tag, groups := range cat {
		bucket := buckets[tag.Scored()]
		for _, group := range groups {
			bucket = append(bucket, s.drawFromGroup(group)...)
		}
		buckets[tag.Scored()] = bucket
	}

	for tag, bucket := range buckets {
		s.rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		buckets[tag] = bucket
	}

	for _, instruction := range s.instructions {
		tag := instruction.Type.Scored()
		if !instruction.Type.IsInstruction() || !tag.Known() {
			log.Printf("sampler: skipping unsupported instruction type %q", instruction.Type)
			continue
		}
		buckets[tag] = append([]trial.Spec{instruction}, buckets[tag]...)
	}

	var sequence []trial.Spec
	for _, tag := range trial.BucketOrder {
		sequence = append(sequence, buckets[tag]...)
	}

	return s.insertAttentionChecks(sequence)
}

// drawFromGroup samples min(len(group), SamplePerGroup) items uniformly
// without replacement. Silent truncation on small groups is intended.
func (s *Sampler) drawFromGroup(group catalog.Group) []trial.Spec {
	k := s.policy.SamplePerGroup
	if len(group) <= k {
		return append([]trial.Spec(nil), group...)
	}
	indices := s.rng.Perm(len(group))[:k]
	drawn := make([]trial.Spec, 0, k)
	for _, idx := range indices {
		drawn = append(drawn, group[idx])
	}
	return drawn
}

// insertAttentionChecks places up to NumAttention checks, drawn without
// replacement from the pool, at random positions inside the fractional
// window of the final sequence length. Check k always lands after check
// k-1: the window is split into one sub-segment per check and positions
// are inserted in ascending order, so each target index is final. The
// original deployment computed windows against the growing list instead;
// that formula is policy, the ordering invariant is what matters.
func (s *Sampler) insertAttentionChecks(sequence []trial.Spec) []trial.Spec {
	n := s.policy.NumAttention
	if n > len(s.attention) {
		n = len(s.attention)
	}
	if n == 0 || len(sequence) == 0 {
		return sequence
	}

	drawn := make([]trial.Spec, 0, n)
	for _, idx := range s.rng.Perm(len(s.attention))[:n] {
		drawn = append(drawn, s.attention[idx])
	}

	finalLen := len(sequence) + n
	span := s.policy.WindowHi - s.policy.WindowLo
	positions := make([]int, n)
	prev := -1
	for i := 0; i < n; i++ {
		loFrac := s.policy.WindowLo + span*float64(i)/float64(n)
		hiFrac := s.policy.WindowLo + span*float64(i+1)/float64(n)
		lo := int(math.Ceil(loFrac * float64(finalLen)))
		hi := int(math.Floor(hiFrac*float64(finalLen))) - 1
		if lo <= prev {
			lo = prev + 1
		}
		if hi < lo {
			hi = lo
		}
		if hi >= finalLen {
			hi = finalLen - 1
		}
		pos := lo
		if hi > lo {
			pos = lo + s.rng.Intn(hi-lo+1)
		}
		positions[i] = pos
		prev = pos
	}
	sort.Ints(positions)

	for i, pos := range positions {
		if pos > len(sequence) {
			pos = len(sequence)
		}
		sequence = append(sequence, trial.Spec{})
		copy(sequence[pos+1:], sequence[pos:])
		sequence[pos] = drawn[i]
	}
	return sequence
}
