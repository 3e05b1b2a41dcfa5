package setup

import (
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/ruangdiskusi/webclient/internal/apiclient"
	"github.com/ruangdiskusi/webclient/internal/config"
	"github.com/ruangdiskusi/webclient/internal/handler"
	"github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/middleware/metrics"
	"github.com/ruangdiskusi/webclient/internal/search"
	"github.com/ruangdiskusi/webclient/internal/session"
)

const (
	baseTemplate           = "base.html"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler  *handler.Handler
	Auth     *middleware.Auth
	Sessions *session.Manager
	Public   config.Public
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	templates := mustLoadTemplates(cfg.Public.TemplatePath)

	apiClient := apiclient.New(cfg.Public.APIBaseURL)
	sessions := session.NewManager(apiClient, cfg.Public.RealtimeURL, cfg.Public.NotificationPollInterval)
	searchSvc := search.New(cfg.Public.SearchHost)

	h := handler.New(templates, cfg.Public, apiClient, sessions, searchSvc, cfg.SearchAPIKey())
	startTemplateReloader(h, cfg.Public.TemplatePath)

	metrics.SetSessionCounter(sessions.Count)

	return &Dependencies{
		Handler:  h,
		Auth:     middleware.NewAuth(cfg.Public.SecureCookies),
		Sessions: sessions,
		Public:   cfg.Public,
	}
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

// pages builds the page-number range for pagination controls.
func pages(total int) []int {
	if total < 1 {
		return nil
	}
	out := make([]int, total)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func indent(level int) int { return level * 24 }

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"sub":    sub,
					"add":    add,
					"pages":  pages,
					"indent": indent,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			),
			)
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
