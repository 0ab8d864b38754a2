package analysis

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

// SystemStat is one aggregate row: a test type and system with its mean
// score, 95% confidence interval and sample count.
type SystemStat struct {
	TestType trial.Type `json:"test_type"`
	System   string     `json:"system"`
	Mean     float64    `json:"mean"`
	CILower  float64    `json:"ci_lower"`
	CIUpper  float64    `json:"ci_upper"`
	N        int        `json:"n_samples"`
}

// UtteranceStat aggregates one system's scores for a single utterance.
type UtteranceStat struct {
	TestType  trial.Type `json:"test_type"`
	System    string     `json:"system"`
	Utterance string     `json:"utterance"`
	Mean      float64    `json:"mean"`
	N         int        `json:"n_samples"`
}

// Config tunes the analyzer.
type Config struct {
	// Confidence for the t-interval, e.g. 0.95.
	Confidence float64
	// SMOSShift is added to smos means and interval bounds, used by
	// deployments whose similarity scale is signed (-2..2 reported as
	// 1..5).
	SMOSShift float64
}

// Analyzer consumes persisted result bundles and aggregates system-level
// statistics. The swap correction lives here, and only here: records store
// the raw score plus the swap flag, and scores are negated and systems
// relabeled at aggregation time.
type Analyzer struct {
	cfg Config
}

// New creates an analyzer; a zero Confidence defaults to 0.95.
func New(cfg Config) *Analyzer {
	if cfg.Confidence == 0 {
		cfg.Confidence = 0.95
	}
	return &Analyzer{cfg: cfg}
}

// LoadDir reads every *_results.json bundle under dir concurrently.
func LoadDir(ctx context.Context, dir string) ([]trial.ResultBundle, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*_results.json"))
	if err != nil {
		return nil, errors.Wrap(errors.StoreError("could not list "+dir), err.Error())
	}
	if len(paths) == 0 {
		return nil, errors.StoreError("no result bundles found in " + dir)
	}

	bundles := make([]trial.ResultBundle, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			data, err := os.ReadFile(p)
			if err != nil {
				return errors.Wrap(errors.StoreError("could not read "+p), err.Error())
			}
			if err := json.Unmarshal(data, &bundles[i]); err != nil {
				return errors.Wrap(errors.StoreError("could not decode "+p), err.Error())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// Filter drops whole bundles that fail their attention checks and returns
// the surviving scored records. Instruction and attention records never
// reach aggregation.
func (a *Analyzer) Filter(bundles []trial.ResultBundle) []trial.ResponseRecord {
	var kept []trial.ResponseRecord
	excluded := 0
	for _, bundle := range bundles {
		if !BundlePasses(bundle) {
			excluded++
			log.Printf("analysis: excluding %s (failed attention checks)", bundle.UserID)
			continue
		}
		for _, record := range bundle.Results {
			if record.TestType.IsInstruction() || record.TestType == trial.TypeAttention {
				continue
			}
			kept = append(kept, record)
		}
	}
	log.Printf("analysis: %d/%d bundles passed attention checks", len(bundles)-excluded, len(bundles))
	return kept
}

// scoreKey is one (test type, system) aggregation bucket.
type scoreKey struct {
	testType trial.Type
	system   string
}

// corrected returns the record's effective score and credited system with
// the swap correction applied: a swapped comparative trial's score is
// negated and the reference system takes the target's role.
func corrected(record trial.ResponseRecord) (float64, string, bool) {
	var score int
	switch {
	case record.Score != nil:
		score = *record.Score
	case record.NaturalnessScore != nil:
		score = *record.NaturalnessScore
	default:
		return 0, "", false
	}

	system := record.TargetSystem
	if system == "" {
		system = record.RefSystem
	}
	if record.Swap {
		score = -score
		if record.RefSystem != "" {
			system = record.RefSystem
		}
	}
	if system == "" {
		return 0, "", false
	}
	return float64(score), system, true
}

// Aggregate computes per-system means with confidence intervals.
func (a *Analyzer) Aggregate(records []trial.ResponseRecord) ([]SystemStat, error) {
	buckets := make(map[scoreKey][]float64)
	for _, record := range records {
		score, system, ok := corrected(record)
		if !ok {
			continue
		}
		key := scoreKey{testType: record.TestType, system: system}
		buckets[key] = append(buckets[key], score)

		if record.EditingScore != nil {
			editKey := scoreKey{testType: record.TestType + "_editing", system: system}
			buckets[editKey] = append(buckets[editKey], float64(*record.EditingScore))
		}
	}

	rows := make([]SystemStat, 0, len(buckets))
	for key, scores := range buckets {
		mean, lower, upper, err := a.confidenceInterval(scores)
		if err != nil {
			return nil, err
		}
		if key.testType == trial.TypeSMOS {
			mean += a.cfg.SMOSShift
			lower += a.cfg.SMOSShift
			upper += a.cfg.SMOSShift
		}
		rows = append(rows, SystemStat{
			TestType: key.testType,
			System:   key.system,
			Mean:     mean,
			CILower:  lower,
			CIUpper:  upper,
			N:        len(scores),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TestType != rows[j].TestType {
			return rows[i].TestType < rows[j].TestType
		}
		return rows[i].System < rows[j].System
	})
	return rows, nil
}

// AggregateUtterances computes per-utterance per-system means, keyed by the
// target audio path.
func (a *Analyzer) AggregateUtterances(records []trial.ResponseRecord) []UtteranceStat {
	type utterKey struct {
		testType  trial.Type
		system    string
		utterance string
	}
	buckets := make(map[utterKey][]float64)
	for _, record := range records {
		score, system, ok := corrected(record)
		if !ok {
			continue
		}
		utterance := record.TargetAudio
		if record.Swap && record.ReferenceAudio != "" {
			utterance = record.ReferenceAudio
		}
		key := utterKey{testType: record.TestType, system: system, utterance: filepath.Base(utterance)}
		buckets[key] = append(buckets[key], score)
	}

	rows := make([]UtteranceStat, 0, len(buckets))
	for key, scores := range buckets {
		mean, _ := stats.Mean(scores)
		rows = append(rows, UtteranceStat{
			TestType:  key.testType,
			System:    key.system,
			Utterance: key.utterance,
			Mean:      mean,
			N:         len(scores),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TestType != b.TestType {
			return a.TestType < b.TestType
		}
		if a.System != b.System {
			return a.System < b.System
		}
		return a.Utterance < b.Utterance
	})
	return rows
}

// confidenceInterval computes the mean and the two-sided t-interval.
// Singleton groups get a degenerate interval equal to the mean.
func (a *Analyzer) confidenceInterval(scores []float64) (mean, lower, upper float64, err error) {
	mean, err = stats.Mean(scores)
	if err != nil {
		return 0, 0, 0, errors.Wrap(errors.New(errors.CodeInternalError, "mean computation failed"), err.Error())
	}
	n := len(scores)
	if n < 2 {
		return mean, mean, mean, nil
	}
	sd, err := stats.StandardDeviationSample(scores)
	if err != nil {
		return 0, 0, 0, errors.Wrap(errors.New(errors.CodeInternalError, "stddev computation failed"), err.Error())
	}
	sem := sd / math.Sqrt(float64(n))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	t := tDist.Quantile(0.5 + a.cfg.Confidence/2)
	return mean, mean - t*sem, mean + t*sem, nil
}
