package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ruangdiskusi/webclient/internal/middleware/metrics"
	"github.com/ruangdiskusi/webclient/internal/setup"
)

func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	h := deps.Handler
	auth := deps.Auth

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Login is reachable anonymously; OptionalAuth lets a signed-in visitor
	// skip straight to the thread list.
	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuth())
		r.Get("/login", h.LoginGetHandler)
		r.Post("/login", h.LoginPostHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.NeedAuth())

		r.Get("/", h.IndexHandler)
		r.Post("/logout", h.LogoutHandler)

		r.Get("/threads", h.ThreadListHandler)
		r.Get("/threads/new", h.ThreadNewGetHandler)
		r.Post("/threads", h.ThreadCreateHandler)
		r.Get("/threads/{slug}", h.ThreadGetHandler)
		r.Get("/threads/{slug}/edit", h.ThreadEditGetHandler)
		r.Post("/threads/{slug}/edit", h.ThreadUpdateHandler)
		r.Post("/threads/{slug}/delete", h.ThreadDeleteHandler)
		r.Post("/threads/{slug}/reply", h.ReplyCreateHandler)
		r.Post("/threads/{slug}/like", h.ThreadLikeHandler)

		r.Post("/posts/{id}/edit", h.PostUpdateHandler)
		r.Post("/posts/{id}/delete", h.PostDeleteHandler)
		r.Post("/posts/{id}/like", h.PostLikeHandler)

		r.Get("/notifications", h.NotificationsGetHandler)
		r.Get("/notifications/fragment", h.NotificationFragmentHandler)
		r.Post("/notifications/{id}/read", h.NotificationReadHandler)
		r.Post("/notifications/read-all", h.NotificationReadAllHandler)

		r.Get("/profile", h.MyProfileGetHandler)
		r.Post("/profile", h.ProfileUpdateHandler)
		r.Get("/users/{username}", h.PublicProfileGetHandler)

		r.Get("/menfess", h.MenfessGetHandler)
		r.Post("/menfess", h.MenfessCreateHandler)
		r.Get("/leaderboard", h.LeaderboardGetHandler)
		r.Get("/search", h.SearchGetHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AdminOnly())

		r.Get("/admin/users", h.AdminUsersGetHandler)
		r.Post("/admin/users", h.AdminUserCreateHandler)
		r.Post("/admin/users/delete", h.AdminUserDeleteHandler)
		r.Get("/admin/categories", h.AdminCategoriesGetHandler)
		r.Post("/admin/categories", h.AdminCategoryCreateHandler)
		r.Post("/admin/categories/delete", h.AdminCategoryDeleteHandler)
	})

	return r
}
