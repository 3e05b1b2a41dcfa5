// Package handler serves the HTML pages of the forum client. Every handler
// talks to the backend through the typed API client and renders with the
// shared template set.
package handler

import (
	"html/template"

	"github.com/go-playground/validator/v10"

	"github.com/ruangdiskusi/webclient/internal/apiclient"
	"github.com/ruangdiskusi/webclient/internal/config"
	"github.com/ruangdiskusi/webclient/internal/search"
	"github.com/ruangdiskusi/webclient/internal/session"
)

type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	API       *apiclient.Client
	Sessions  *session.Manager
	Search    *search.Service
	Validate  *validator.Validate

	// SearchAPIKey is the fallback used when a login response carries no
	// per-user search token.
	SearchAPIKey string
}

func New(templates map[string]*template.Template, publicCfg config.Public, apiClient *apiclient.Client, sessions *session.Manager, searchSvc *search.Service, searchAPIKey string) *Handler {
	return &Handler{
		Templates:    templates,
		Public:       publicCfg,
		API:          apiClient,
		Sessions:     sessions,
		Search:       searchSvc,
		Validate:     validator.New(),
		SearchAPIKey: searchAPIKey,
	}
}
