package ui

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mostest/domain/descriptor"
	"mostest/domain/session"
	"mostest/domain/trial"
	"mostest/internal/errors"
)

// identityView backs the entry form.
type identityView struct {
	Error string
}

// trialView backs the per-trial page.
type trialView struct {
	Token         string
	Progress      string
	Message       string
	Instructions  template.HTML
	RefAudio      string
	TargetAudio   string
	RefLabel      string
	TargetLabel   string
	Levels        []trial.Level
	EditingLevels []trial.Level
	Transcript    string
}

// completeView backs the completion page.
type completeView struct {
	Message      string
	ShowRedirect bool
	RedirectURL  string
}

// handleEntry serves the session entry point. A PROLIFIC_PID query
// parameter auto-starts the session with that identity; otherwise the
// participant is asked for an email address.
func (a *App) handleEntry(c *gin.Context) {
	pid := c.Query("PROLIFIC_PID")
	if pid == "" {
		c.HTML(http.StatusOK, "index.html", identityView{})
		return
	}
	a.startSession(c, "", pid, flattenQuery(c.Request.URL.Query()))
}

// handleStart processes the email form.
func (a *App) handleStart(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	params := map[string]string{}
	if qs := c.PostForm("qs"); qs != "" {
		if values, err := url.ParseQuery(qs); err == nil {
			params = flattenQuery(values)
		}
	}
	a.startSession(c, email, "", params)
}

func (a *App) startSession(c *gin.Context, email, externalID string, params map[string]string) {
	s, err := a.machine.Start(c.Request.Context(), email, externalID, params)
	if err != nil {
		status := http.StatusBadRequest
		if errors.HasCode(err, errors.CodeStudyFull) {
			status = http.StatusOK
		}
		c.HTML(status, "index.html", identityView{Error: err.Error()})
		return
	}
	a.sessions.Add(s)
	c.Redirect(http.StatusSeeOther, "/session/"+s.Token)
}

// handleTrial renders the trial under the session's cursor, or the
// completion page once the cursor has run off the end.
func (a *App) handleTrial(c *gin.Context) {
	s, ok := a.sessions.Get(c.Param("token"))
	if !ok {
		c.HTML(http.StatusNotFound, "index.html", identityView{Error: "Session not found. Please start again."})
		return
	}

	if s.State() == session.Completed {
		a.sessions.Remove(s.Token)
		view := completeView{Message: a.locale.FinishEmail}
		if !strings.Contains(s.Identity, "@") {
			view.Message = a.locale.FinishExternal
			view.ShowRedirect = true
			view.RedirectURL = a.redirectURL
		}
		c.HTML(http.StatusOK, "complete.html", view)
		return
	}

	desc, err := s.Current()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": err.Error()})
		return
	}

	view := trialView{
		Token:        s.Token,
		Progress:     s.Progress(),
		Message:      c.Query("msg"),
		Instructions: desc.Instructions(),
		TargetAudio:  a.audioURL(desc.TargetAudio()),
		TargetLabel:  "sample",
		Levels:       desc.Scale().Levels,
	}
	if desc.NeedsReference() {
		view.RefAudio = a.audioURL(desc.ReferenceAudio())
		view.RefLabel = "sample A"
		view.TargetLabel = "sample B"
	}
	if edit, ok := desc.(descriptor.EditFidelity); ok {
		view.EditingLevels = edit.EditingScale().Levels
		view.Transcript = edit.EditedTranscript()
	}
	c.HTML(http.StatusOK, "trial.html", view)
}

// handlePlayed records a playback-finished notification for one slot.
func (a *App) handlePlayed(c *gin.Context) {
	s, ok := a.sessions.Get(c.Param("token"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	switch c.PostForm("slot") {
	case "reference":
		s.MarkPlayed(session.SlotReference)
	case "target":
		s.MarkPlayed(session.SlotTarget)
	default:
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleSubmit processes one rating submission. Recoverable rejections
// bounce back to the trial page with a guidance message and no state
// change; persistence failures are fatal to the session and surfaced.
func (a *App) handleSubmit(c *gin.Context) {
	s, ok := a.sessions.Get(c.Param("token"))
	if !ok {
		c.HTML(http.StatusNotFound, "index.html", identityView{Error: "Session not found. Please start again."})
		return
	}

	score := parseFormInt(c.PostForm("score"))
	editingScore := parseFormInt(c.PostForm("editing_score"))

	_, err := s.Submit(c.Request.Context(), score, editingScore)
	if err != nil {
		switch errors.GetCode(err) {
		case errors.CodeIncompletePlayback, errors.CodeMissingScore:
			c.Redirect(http.StatusSeeOther, "/session/"+s.Token+"?msg="+url.QueryEscape(err.Error()))
		default:
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": err.Error()})
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/session/"+s.Token)
}

// handleAudio serves audio files rooted at the configured directory.
func (a *App) handleAudio(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		c.Status(http.StatusBadRequest)
		return
	}
	c.File(filepath.Join(a.audioDir, clean))
}

// audioURL maps a catalog audio path to something the browser can fetch:
// absolute URLs pass through, filesystem paths are served via /audio/.
func (a *App) audioURL(audioPath string) string {
	if audioPath == "" {
		return ""
	}
	if strings.HasPrefix(audioPath, "http://") || strings.HasPrefix(audioPath, "https://") {
		return audioPath
	}
	return "/audio/" + strings.TrimPrefix(filepath.ToSlash(audioPath), "/")
}

func parseFormInt(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

func flattenQuery(values url.Values) map[string]string {
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params
}
