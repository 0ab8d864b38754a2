package catalogbuild

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mostest/domain/trial"
	"mostest/internal/errors"
)

// WebIndexBuilder lists audio files from HTTP directory indexes (one index
// URL per system) and emits URL-based catalogs, for deployments whose
// audio lives behind a plain file server.
type WebIndexBuilder struct {
	cfg    *BuildConfig
	client *http.Client
	rng    *rand.Rand
}

// NewWebIndexBuilder creates a builder with a bounded-timeout client.
func NewWebIndexBuilder(cfg *BuildConfig, rng *rand.Rand) *WebIndexBuilder {
	return &WebIndexBuilder{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		rng:    rng,
	}
}

// Build fetches every system's index and generates the configured groups.
func (b *WebIndexBuilder) Build(ctx context.Context) (map[string][][]trial.Spec, error) {
	files := make(map[string][]audioFile)
	for system, indexURL := range b.cfg.Systems {
		listed, err := b.listIndex(ctx, indexURL, system)
		if err != nil {
			return nil, err
		}
		log.Printf("catalogbuild: %d audio files at %s", len(listed), indexURL)
		files[system] = listed
	}

	local := &LocalBuilder{cfg: b.cfg, rng: b.rng}
	catalog := make(map[string][][]trial.Spec)
	if groups := local.pairedGroups(trial.TypeCMOS, b.cfg.Tests.CMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeCMOS)] = groups
	}
	if groups := local.pairedGroups(trial.TypeSMOS, b.cfg.Tests.SMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeSMOS)] = groups
	}
	if groups := local.singletonGroups(trial.TypeQMOS, b.cfg.Tests.QMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeQMOS)] = groups
	}
	if groups := local.singletonGroups(trial.TypeNMOS, b.cfg.Tests.NMOS, files); len(groups) > 0 {
		catalog[string(trial.TypeNMOS)] = groups
	}
	return catalog, nil
}

// listIndex scrapes the anchor tags of one directory index page and keeps
// links with an audio extension, resolved against the index URL.
func (b *WebIndexBuilder) listIndex(ctx context.Context, indexURL, system string) ([]audioFile, error) {
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid("bad index URL "+indexURL), err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid("bad index URL "+indexURL), err.Error())
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.StoreError("could not fetch "+indexURL), err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.StoreError("index " + indexURL + " returned " + resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.StoreError("could not parse index "+indexURL), err.Error())
	}

	var files []audioFile
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !audioExtensions[strings.ToLower(path.Ext(href))] {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		files = append(files, audioFile{
			name:   path.Base(resolved.Path),
			path:   resolved.String(),
			system: system,
		})
	})
	return files, nil
}
