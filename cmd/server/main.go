package main

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"mostest/adapters/results"
	"mostest/domain/catalog"
	"mostest/domain/descriptor"
	"mostest/domain/sampler"
	"mostest/domain/session"
	"mostest/domain/trial"
	"mostest/internal/config"
	"mostest/ui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error:", err)
	}

	locale, err := descriptor.ByName(cfg.Catalog.Locale)
	if err != nil {
		log.Fatal("Locale error:", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Catalog error:", err)
	}

	var attention, instructions []trial.Spec
	if cfg.Catalog.AttentionPool != "" {
		if attention, err = catalog.LoadPool(cfg.Catalog.AttentionPool); err != nil {
			log.Fatal("Attention pool error:", err)
		}
	}
	if cfg.Catalog.InstructionsPath != "" {
		if instructions, err = catalog.LoadPool(cfg.Catalog.InstructionsPath); err != nil {
			log.Fatal("Instruction pool error:", err)
		}
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("Results store error:", err)
	}

	policy := sampler.Policy{
		SamplePerGroup: cfg.Sampling.SamplePerGroup,
		NumAttention:   cfg.Sampling.NumAttention,
		WindowLo:       cfg.Sampling.AttentionWindowLo,
		WindowHi:       cfg.Sampling.AttentionWindowHi,
	}
	sample := newSampleFunc(policy, cat, attention, instructions, cfg.Sampling.RandomSeed)

	machine := session.NewMachine(
		descriptor.DefaultRegistry(locale),
		sample,
		store,
		locale,
		cfg.Study.MaxParticipants,
	)

	app, err := ui.NewApp(ui.Config{
		GinMode:                cfg.Server.GinMode,
		AudioDir:               cfg.Server.AudioDir,
		ProlificCompletionCode: cfg.Study.ProlificCompletionCode,
	}, machine, locale)
	if err != nil {
		log.Fatal("Failed to create web app:", err)
	}

	log.Printf("Listening test server on http://localhost:%s (locale %s, %d systems)",
		cfg.Server.Port, locale.Name, len(cat.Systems()))
	log.Fatal(app.Start(cfg.Server.Port))
}

// newSampleFunc derives an independent rng per session start from one seeded
// base source, so a fixed RANDOM_SEED reproduces the whole sequence of
// sessions while concurrent starts never share a rand.Rand.
func newSampleFunc(policy sampler.Policy, cat catalog.Catalog, attention, instructions []trial.Spec, seed int64) func() []trial.Spec {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var mu sync.Mutex
	base := rand.New(rand.NewSource(seed))
	return func() []trial.Spec {
		mu.Lock()
		rng := rand.New(rand.NewSource(base.Int63()))
		mu.Unlock()
		return sampler.New(policy, attention, instructions, rng).Sample(cat)
	}
}

func newStore(cfg *config.Config) (results.Store, error) {
	switch cfg.Results.Backend {
	case "postgres":
		return results.NewPostgresStore(cfg.Results.DatabaseURL)
	default:
		return results.NewLocalStore(cfg.Results.Dir)
	}
}
