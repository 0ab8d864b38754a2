package ui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mostest/adapters/results"
	"mostest/domain/descriptor"
	"mostest/domain/session"
	"mostest/domain/trial"
)

func newTestApp(t *testing.T, trials []trial.Spec, maxParticipants int) (*App, *results.LocalStore) {
	t.Helper()
	store, err := results.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	locale := descriptor.English()
	machine := session.NewMachine(
		descriptor.DefaultRegistry(locale),
		func() []trial.Spec { return append([]trial.Spec(nil), trials...) },
		store,
		locale,
		maxParticipants,
	)
	app, err := NewApp(Config{GinMode: "test", ProlificCompletionCode: "CAFE01"}, machine, locale)
	if err != nil {
		t.Fatal(err)
	}
	return app, store
}

func singleCMOS() []trial.Spec {
	return []trial.Spec{{
		Type:         trial.TypeCMOS,
		Reference:    "sys_a/u0.wav",
		Target:       "sys_b/u0.wav",
		RefSystem:    "sys_a",
		TargetSystem: "sys_b",
	}}
}

func postForm(app *App, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

func get(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, app *App, email string) string {
	t.Helper()
	w := postForm(app, "/session", url.Values{"email": {email}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("start returned %d: %s", w.Code, w.Body.String())
	}
	location := w.Header().Get("Location")
	return strings.TrimPrefix(location, "/session/")
}

func TestEntryPage(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	w := get(app, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("entry returned %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "email") {
		t.Error("entry page has no email form")
	}
}

func TestEntryAutoStartsProlificSession(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	w := get(app, "/?PROLIFIC_PID=PID42&STUDY_ID=S1")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect for prolific entry, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Location"), "/session/") {
		t.Errorf("unexpected redirect target %q", w.Header().Get("Location"))
	}
}

func TestStartRejectsInvalidEmail(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	w := postForm(app, "/session", url.Values{"email": {"not-an-email"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "valid email") {
		t.Error("rejection page carries no guidance")
	}
}

func TestStartWhenStudyFull(t *testing.T) {
	app, store := newTestApp(t, singleCMOS(), 1)
	if err := store.Persist(context.Background(), trial.ResultBundle{UserID: "done@example.com"}); err != nil {
		t.Fatal(err)
	}

	w := postForm(app, "/session", url.Values{"email": {"late@example.com"}})
	// Full is an outcome, not an input error.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a full study, got %d", w.Code)
	}
}

func TestTrialPageRendersComparison(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	token := startSession(t, app, "user@example.com")

	w := get(app, "/session/"+token)
	if w.Code != http.StatusOK {
		t.Fatalf("trial page returned %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Progress: 0/1",
		"/audio/sys_a/u0.wav",
		"/audio/sys_b/u0.wav",
		"sample A",
		"sample B",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("trial page missing %q", want)
		}
	}
}

func TestUnknownSessionToken(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	w := get(app, "/session/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Session not found") {
		t.Error("missing-session page has no guidance")
	}
}

func TestSubmitRequiresPlayback(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	token := startSession(t, app, "user@example.com")

	w := postForm(app, "/session/"+token+"/submit", url.Values{"score": {"2"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected bounce redirect, got %d", w.Code)
	}
	location := w.Header().Get("Location")
	if !strings.Contains(location, "msg=") {
		t.Errorf("bounce redirect carries no message: %q", location)
	}

	// The message surfaces on the re-rendered trial page.
	w = get(app, location)
	if !strings.Contains(w.Body.String(), "Progress: 0/1") {
		t.Error("rejected submission advanced the session")
	}
}

func TestFullSessionFlow(t *testing.T) {
	trials := []trial.Spec{
		singleCMOS()[0],
		{Type: trial.TypeQMOS, Target: "sys_b/u1.wav", System: "sys_b"},
	}
	app, store := newTestApp(t, trials, 0)
	token := startSession(t, app, "user@example.com")

	markPlayed := func(slot string) {
		w := postForm(app, "/session/"+token+"/played", url.Values{"slot": {slot}})
		if w.Code != http.StatusNoContent {
			t.Fatalf("played(%s) returned %d", slot, w.Code)
		}
	}

	// Comparative trial: both slots then a score on [-3..3].
	markPlayed("reference")
	markPlayed("target")
	w := postForm(app, "/session/"+token+"/submit", url.Values{"score": {"-1"}})
	if w.Code != http.StatusSeeOther || strings.Contains(w.Header().Get("Location"), "msg=") {
		t.Fatalf("first submit rejected: %d %q", w.Code, w.Header().Get("Location"))
	}

	// Quality trial: target slot only.
	markPlayed("target")
	w = postForm(app, "/session/"+token+"/submit", url.Values{"score": {"4"}})
	if w.Code != http.StatusSeeOther || strings.Contains(w.Header().Get("Location"), "msg=") {
		t.Fatalf("second submit rejected: %d %q", w.Code, w.Header().Get("Location"))
	}

	// The completion page renders and retires the session.
	w = get(app, "/session/"+token)
	if w.Code != http.StatusOK {
		t.Fatalf("completion page returned %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "prolific") {
		t.Error("email participant offered a platform redirect")
	}

	bundle, err := store.Load(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("bundle not persisted: %v", err)
	}
	if len(bundle.Results) != 2 {
		t.Fatalf("bundle has %d results, want 2", len(bundle.Results))
	}
	if bundle.Results[1].TargetSystem != "sys_b" {
		t.Errorf("quality trial lost its system: %+v", bundle.Results[1])
	}

	// The token is single-use once completed.
	w = get(app, "/session/"+token)
	if w.Code != http.StatusNotFound {
		t.Errorf("completed session still resolvable, got %d", w.Code)
	}
}

func TestProlificCompletionRedirect(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)

	w := get(app, "/?PROLIFIC_PID=PID42")
	token := strings.TrimPrefix(w.Header().Get("Location"), "/session/")

	postForm(app, "/session/"+token+"/played", url.Values{"slot": {"reference"}})
	postForm(app, "/session/"+token+"/played", url.Values{"slot": {"target"}})
	postForm(app, "/session/"+token+"/submit", url.Values{"score": {"0"}})

	w = get(app, "/session/"+token)
	if w.Code != http.StatusOK {
		t.Fatalf("completion page returned %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "https://app.prolific.com/submissions/complete?cc=CAFE01") {
		t.Error("external participant not offered the completion redirect")
	}
}

func TestPlayedValidation(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	token := startSession(t, app, "user@example.com")

	w := postForm(app, "/session/"+token+"/played", url.Values{"slot": {"sideways"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown slot accepted: %d", w.Code)
	}
	w = postForm(app, "/session/nope/played", url.Values{"slot": {"target"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown token accepted: %d", w.Code)
	}
}

func TestAudioPathTraversalBlocked(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	w := get(app, "/audio/..%2F..%2Fetc%2Fpasswd")
	if w.Code != http.StatusBadRequest && w.Code != http.StatusNotFound {
		t.Errorf("traversal request returned %d", w.Code)
	}
}

func TestAudioURLMapping(t *testing.T) {
	app, _ := newTestApp(t, singleCMOS(), 0)
	tests := []struct{ in, want string }{
		{"sys_b/u0.wav", "/audio/sys_b/u0.wav"},
		{"/abs/path.wav", "/audio/abs/path.wav"},
		{"https://cdn.example.com/u0.wav", "https://cdn.example.com/u0.wav"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := app.audioURL(tc.in); got != tc.want {
			t.Errorf("audioURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	sessions := make([]*session.Session, 0, 3)
	app, _ := newTestApp(t, singleCMOS(), 0)

	for i := 0; i < 3; i++ {
		s, err := app.machine.Start(context.Background(), fmt.Sprintf("u%d@example.com", i), "", nil)
		if err != nil {
			t.Fatal(err)
		}
		registry.Add(s)
		sessions = append(sessions, s)
	}

	if registry.Len() != 3 {
		t.Errorf("Len = %d, want 3", registry.Len())
	}
	got, ok := registry.Get(sessions[1].Token)
	if !ok || got != sessions[1] {
		t.Error("Get returned the wrong session")
	}
	registry.Remove(sessions[1].Token)
	if _, ok := registry.Get(sessions[1].Token); ok {
		t.Error("removed session still resolvable")
	}
	if registry.Len() != 2 {
		t.Errorf("Len = %d after removal, want 2", registry.Len())
	}
}
