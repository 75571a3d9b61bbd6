package web

import (
	"aqiform/config"
	"aqiform/models"
	"aqiform/web/pages/auth"

	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// App carries everything the handlers share: the validated config, the
// bound element ids, page sessions and the form orchestrator.
type App struct {
	Config       config.Config
	El           auth.Elements
	Sessions     *models.SessionStore
	Signer       *models.TokenSigner
	Orchestrator *models.Orchestrator
	Catalog      *models.Catalog
}

// NewApp builds the application from cfg. Element binding happens here, so
// a page with a missing or duplicate id never starts serving.
func NewApp(cfg config.Config) (*App, error) {
	signer, err := models.NewTokenSigner(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create session signer")
	}

	sessions := models.NewSessionStore(cfg.SessionTTL)
	sessions.SetLimit(cfg.MaxSessions)

	cascade := models.NewCascade()
	return &App{
		Config:       cfg,
		El:           auth.MustBindElements(),
		Sessions:     sessions,
		Signer:       signer,
		Orchestrator: models.NewOrchestrator(cfg.Policy(), cascade),
		Catalog:      cascade.Catalog,
	}, nil
}

// session returns the page session the session middleware attached to c
func (a *App) session(c rweb.Context) *models.PageSession {
	id, _ := c.Get(sessionKey).(string)
	if id == "" {
		id = models.NewSessionID()
	}
	return a.Sessions.Get(id)
}
