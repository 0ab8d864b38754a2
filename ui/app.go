package ui

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"mostest/domain/descriptor"
	"mostest/domain/session"
	"mostest/internal/errors"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the participant-facing web application: identity entry, one trial
// page at a time, completion page. All session state lives in the registry,
// keyed by token; nothing participant-specific is stored on the App.
type App struct {
	router      *gin.Engine
	machine     *session.Machine
	sessions    *Registry
	locale      descriptor.Locale
	audioDir    string
	redirectURL string
}

// Config holds web application settings.
type Config struct {
	GinMode  string
	AudioDir string
	// ProlificCompletionCode builds the return-to-platform URL for
	// externally identified participants; empty falls back to the
	// platform landing page.
	ProlificCompletionCode string
}

// NewApp wires the router, templates and session registry.
func NewApp(cfg Config, machine *session.Machine, locale descriptor.Locale) (*App, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(errors.New(errors.CodeInternalError, "failed to parse templates"), err.Error())
	}

	redirectURL := "https://app.prolific.com/"
	if cfg.ProlificCompletionCode != "" {
		redirectURL = "https://app.prolific.com/submissions/complete?cc=" + cfg.ProlificCompletionCode
	}

	app := &App{
		router:      gin.Default(),
		machine:     machine,
		sessions:    NewRegistry(),
		locale:      locale,
		audioDir:    cfg.AudioDir,
		redirectURL: redirectURL,
	}
	app.router.SetHTMLTemplate(templates)
	app.setupRoutes()
	return app, nil
}

func (a *App) setupRoutes() {
	a.router.GET("/", a.handleEntry)
	a.router.POST("/session", a.handleStart)
	a.router.GET("/session/:token", a.handleTrial)
	a.router.POST("/session/:token/played", a.handlePlayed)
	a.router.POST("/session/:token/submit", a.handleSubmit)
	a.router.GET("/audio/*path", a.handleAudio)
}

// Start runs the HTTP server on the given port.
func (a *App) Start(port string) error {
	return a.router.Run(":" + port)
}

// Router exposes the gin engine for tests.
func (a *App) Router() *gin.Engine { return a.router }
