package catalogbuild

import (
	"bufio"
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

var audioExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".flac": true, ".ogg": true, ".aac": true,
}

// audioFile is one discovered sample.
type audioFile struct {
	name   string // base filename, the cross-system join key
	path   string // path stored in the catalog
	system string
}

// LocalBuilder crawls per-system audio directories on disk and emits the
// catalog JSON the loader consumes.
type LocalBuilder struct {
	cfg *BuildConfig
	rng *rand.Rand
}

// NewLocalBuilder creates a builder; rng drives swap assignment.
func NewLocalBuilder(cfg *BuildConfig, rng *rand.Rand) *LocalBuilder {
	return &LocalBuilder{cfg: cfg, rng: rng}
}

// Build scans every system directory and generates the configured test
// groups. Missing systems or unmatched files are logged and skipped, never
// fatal: a partial catalog is still a usable catalog.
func (b *LocalBuilder) Build() (map[string][][]trial.Spec, error) {
	files := make(map[string][]audioFile)
	for system, dir := range b.cfg.Systems {
		scanned, err := scanDir(dir, system)
		if err != nil {
			return nil, err
		}
		log.Printf("catalogbuild: %d audio files in %s", len(scanned), system)
		files[system] = scanned
	}

	catalog := make(map[string][][]trial.Spec)
	if groups := b.pairedGroups(trial.TypeCMOS, b.cfg.Tests.CMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeCMOS)] = groups
	}
	if groups := b.pairedGroups(trial.TypeSMOS, b.cfg.Tests.SMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeSMOS)] = groups
	}
	if groups := b.singletonGroups(trial.TypeQMOS, b.cfg.Tests.QMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeQMOS)] = groups
	}
	if groups := b.singletonGroups(trial.TypeNMOS, b.cfg.Tests.NMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeNMOS)] = groups
	}
	return catalog, nil
}

// WriteCatalog emits the built catalog to the configured output path.
func (b *LocalBuilder) WriteCatalog(catalog map[string][][]trial.Spec) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return errors.Wrap(errors.StoreError("could not encode catalog"), err.Error())
	}
	if err := os.WriteFile(b.cfg.Output, data, 0644); err != nil {
		return errors.Wrap(errors.StoreError("could not write "+b.cfg.Output), err.Error())
	}
	return nil
}

// pairedGroups builds one comparison group per configured system pair,
// joining files on their base filename (or on a metalst pairing list when
// given).
func (b *LocalBuilder) pairedGroups(tag trial.Type, pairs []PairConfig, files map[string][]audioFile) [][]trial.Spec {
	var groups [][]trial.Spec
	for _, pair := range pairs {
		refFiles, refOK := files[pair.Ref]
		targetFiles, targetOK := files[pair.Target]
		if !refOK || !targetOK || len(refFiles) == 0 || len(targetFiles) == 0 {
			log.Printf("catalogbuild: skipping %s pair %s vs %s, missing system files", tag, pair.Ref, pair.Target)
			continue
		}

		var group []trial.Spec
		if pair.Metalst != "" {
			group = b.pairFromMetalst(tag, pair, refFiles, targetFiles)
		} else {
			group = b.pairByName(tag, pair, refFiles, targetFiles)
		}
		if len(group) > 0 {
			groups = append(groups, group)
			log.Printf("catalogbuild: %d %s pairs for %s vs %s", len(group), tag, pair.Ref, pair.Target)
		}
	}
	return groups
}

func (b *LocalBuilder) pairByName(tag trial.Type, pair PairConfig, refFiles, targetFiles []audioFile) []trial.Spec {
	byName := make(map[string]audioFile, len(targetFiles))
	for _, f := range targetFiles {
		byName[f.name] = f
	}

	limit := pair.NumPairs
	if limit <= 0 || limit > len(refFiles) {
		limit = len(refFiles)
	}

	var group []trial.Spec
	for _, ref := range refFiles[:limit] {
		target, ok := byName[ref.name]
		if !ok {
			log.Printf("catalogbuild: no matching %s file for %s in %s", tag, ref.name, pair.Target)
			continue
		}
		group = append(group, b.makePair(tag, pair, ref, target, ""))
	}
	return group
}

// pairFromMetalst joins ref/target files through a tab-separated pairing
// list: field 0 names the reference utterance, field 3 the target.
func (b *LocalBuilder) pairFromMetalst(tag trial.Type, pair PairConfig, refFiles, targetFiles []audioFile) []trial.Spec {
	refByName := make(map[string]audioFile, len(refFiles))
	for _, f := range refFiles {
		refByName[f.name] = f
	}
	targetByName := make(map[string]audioFile, len(targetFiles))
	for _, f := range targetFiles {
		targetByName[f.name] = f
	}

	f, err := os.Open(pair.Metalst)
	if err != nil {
		log.Printf("catalogbuild: could not open metalst %s: %v", pair.Metalst, err)
		return nil
	}
	defer f.Close()

	var group []trial.Spec
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if pair.NumPairs > 0 && len(group) >= pair.NumPairs {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			continue
		}
		ref, refOK := refByName[filepath.Base(fields[0])]
		target, targetOK := targetByName[filepath.Base(fields[3])]
		if !refOK || !targetOK {
			continue
		}
		group = append(group, b.makePair(tag, pair, ref, target, line))
	}
	return group
}

// makePair assembles one trial spec, flipping presentation with the
// configured swap probability. A flipped pair swaps the audio slots and
// system labels and records swap=true so the analyzer can undo it.
func (b *LocalBuilder) makePair(tag trial.Type, pair PairConfig, ref, target audioFile, metalstLine string) trial.Spec {
	spec := trial.Spec{
		Type:           tag,
		Reference:      ref.path,
		Target:         target.path,
		RefSystem:      pair.Ref,
		TargetSystem:   pair.Target,
		RefFilename:    ref.name,
		TargetFilename: target.name,
		MetalstLine:    metalstLine,
	}
	if b.rng.Float64() < b.cfg.SwapProbability {
		spec.Reference, spec.Target = spec.Target, spec.Reference
		spec.RefSystem, spec.TargetSystem = spec.TargetSystem, spec.RefSystem
		spec.RefFilename, spec.TargetFilename = spec.TargetFilename, spec.RefFilename
		spec.Swap = true
	}
	return spec
}

// singletonGroups builds reference-free groups: one group per configured
// target system, sampled down to NumPairs.
func (b *LocalBuilder) singletonGroups(tag trial.Type, pairs []PairConfig, files map[string][]audioFile) [][]trial.Spec {
	var groups [][]trial.Spec
	for _, pair := range pairs {
		targetFiles, ok := files[pair.Target]
		if !ok || len(targetFiles) == 0 {
			log.Printf("catalogbuild: skipping %s for %s, missing system files", tag, pair.Target)
			continue
		}

		limit := pair.NumPairs
		if limit <= 0 || limit > len(targetFiles) {
			limit = len(targetFiles)
		}
		var group []trial.Spec
		for _, idx := range b.rng.Perm(len(targetFiles))[:limit] {
			f := targetFiles[idx]
			group = append(group, trial.Spec{
				Type:           tag,
				Target:         f.path,
				System:         pair.Target,
				TargetSystem:   pair.Target,
				TargetFilename: f.name,
			})
		}
		groups = append(groups, group)
		log.Printf("catalogbuild: %d %s cases for %s", len(group), tag, pair.Target)
	}
	return groups
}

// scanDir lists the audio files directly under dir.
func scanDir(dir, system string) ([]audioFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid("could not scan audio directory "+dir), err.Error())
	}
	var files []audioFile
	for _, entry := range entries {
		if entry.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, audioFile{
			name:   entry.Name(),
			path:   filepath.Join(dir, entry.Name()),
			system: system,
		})
	}
	return files, nil
}
