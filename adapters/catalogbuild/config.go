package catalogbuild

import (
	"os"

	"gopkg.in/yaml.v3"

	"mostest/internal/errors"
)

// PairConfig describes one comparison to generate: a reference system
// against a target system. Metalst optionally points at a tab-separated
// pairing list for similarity tests; NumPairs caps the group size.
type PairConfig struct {
	Ref      string `yaml:"ref"`
	Target   string `yaml:"target"`
	Metalst  string `yaml:"metalst"`
	NumPairs int    `yaml:"num_pairs"`
}

// BuildConfig is the YAML surface of the catalog builders.
type BuildConfig struct {
	// Root anchors relative audio paths in the emitted catalog.
	Root string `yaml:"root"`
	// Systems maps system names to their audio directories (local
	// builder) or index URLs (web builder).
	Systems map[string]string `yaml:"systems"`
	Tests   struct {
		CMOS []PairConfig `yaml:"cmos"`
		SMOS []PairConfig `yaml:"smos"`
		QMOS []PairConfig `yaml:"qmos"`
		NMOS []PairConfig `yaml:"nmos"`
	} `yaml:"tests"`
	// SwapProbability randomly flips reference/target presentation for
	// de-biasing; the flip is recorded in the trial's swap flag.
	SwapProbability float64 `yaml:"swap_probability"`
	Output          string  `yaml:"output"`
}

// LoadBuildConfig reads and validates a builder config file.
func LoadBuildConfig(path string) (*BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid("could not read builder config "+path), err.Error())
	}
	var cfg BuildConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid("builder config is not valid YAML"), err.Error())
	}
	if len(cfg.Systems) == 0 {
		return nil, errors.ConfigInvalid("builder config names no systems")
	}
	if cfg.Output == "" {
		cfg.Output = "test_cases.json"
	}
	return &cfg, nil
}
