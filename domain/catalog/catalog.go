package catalog

import (
	"encoding/json"
	"os"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

// Group is one comparison group: candidate trials sharing the same system
// pairing or metadata source.
type Group []trial.Spec

// Catalog holds the candidate trials for every test type, grouped by
// comparison group. Read-only after Load.
type Catalog map[trial.Type][]Group

// Load reads a catalog file: a JSON object keyed by test-type string, each
// value an array of comparison groups.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CatalogNotFound("catalog file not found: " + path)
		}
		return nil, errors.Wrap(errors.CatalogNotFound("catalog file unreadable: "+path), err.Error())
	}

	var decoded map[string][]Group
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrap(errors.CatalogMalformed("catalog is not valid JSON"), err.Error())
	}

	cat := make(Catalog, len(decoded))
	for key, groups := range decoded {
		tag := trial.Type(key)
		if !tag.Known() {
			return nil, errors.CatalogMalformed("catalog has unknown test type key: " + key)
		}
		for _, group := range groups {
			for _, spec := range group {
				if spec.Target == "" {
					return nil, errors.CatalogMalformed("catalog entry under " + key + " is missing a target")
				}
				if spec.Type != "" && !spec.Type.Known() {
					return nil, errors.CatalogMalformed("catalog entry has unknown trial type: " + string(spec.Type))
				}
			}
		}
		cat[tag] = groups
	}
	return cat, nil
}

// LoadPool reads a flat JSON array of trial specs, used for the attention
// check pool and the instruction trial list.
func LoadPool(path string) ([]trial.Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CatalogNotFound("trial pool file not found: " + path)
		}
		return nil, errors.Wrap(errors.CatalogNotFound("trial pool file unreadable: "+path), err.Error())
	}

	var pool []trial.Spec
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, errors.Wrap(errors.CatalogMalformed("trial pool is not valid JSON"), err.Error())
	}
	for _, spec := range pool {
		if !spec.Type.Known() {
			return nil, errors.CatalogMalformed("trial pool entry has unknown trial type: " + string(spec.Type))
		}
		if spec.Target == "" {
			return nil, errors.CatalogMalformed("trial pool entry is missing a target")
		}
	}
	return pool, nil
}

// Systems returns the distinct system names mentioned anywhere in the
// catalog. Fewer than two systems is permitted; downstream cross-system
// analysis will simply be empty.
func (c Catalog) Systems() []string {
	seen := make(map[string]bool)
	var systems []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			systems = append(systems, name)
		}
	}
	for _, groups := range c {
		for _, group := range groups {
			for _, spec := range group {
				add(spec.RefSystem)
				add(spec.TargetSystem)
				add(spec.System)
			}
		}
	}
	return systems
}
