package handler

import (
	"net/http"

	"github.com/ruangdiskusi/webclient/internal/api"
	mw "github.com/ruangdiskusi/webclient/internal/middleware"
	"github.com/ruangdiskusi/webclient/internal/view"
)

func (h *Handler) AdminUsersGetHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.API.ListUsers(r.Context(), mw.GetTokenFromContext(r))
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}
	h.renderTemplate(w, r, "admin_users.html", view.AdminUsersPage{Users: users})
}

func (h *Handler) AdminUserCreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/admin/users", "Form tidak valid")
		return
	}
	data := api.CreateUserRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
		FullName: r.FormValue("full_name"),
	}
	if err := h.Validate.Struct(data); err != nil {
		redirectWithError(w, r, "/admin/users", "Semua kolom wajib diisi dengan benar")
		return
	}

	if err := h.API.CreateUser(r.Context(), mw.GetTokenFromContext(r), data); err != nil {
		redirectWithError(w, r, "/admin/users", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/admin/users", "Akun dibuat")
}

func (h *Handler) AdminUserDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteUser(r.Context(), mw.GetTokenFromContext(r), r.FormValue("user_id")); err != nil {
		redirectWithError(w, r, "/admin/users", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/admin/users", "Akun dihapus")
}

func (h *Handler) AdminCategoriesGetHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.API.ListCategories(r.Context(), mw.GetTokenFromContext(r))
	if err != nil {
		redirectWithError(w, r, "/threads", userMessage(err))
		return
	}
	h.renderTemplate(w, r, "admin_categories.html", view.AdminCategoriesPage{Categories: categories})
}

func (h *Handler) AdminCategoryCreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/admin/categories", "Form tidak valid")
		return
	}
	data := api.CreateCategoryRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	if err := h.Validate.Struct(data); err != nil {
		redirectWithError(w, r, "/admin/categories", "Nama kategori wajib diisi")
		return
	}

	if err := h.API.CreateCategory(r.Context(), mw.GetTokenFromContext(r), data); err != nil {
		redirectWithError(w, r, "/admin/categories", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/admin/categories", "Kategori dibuat")
}

func (h *Handler) AdminCategoryDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteCategory(r.Context(), mw.GetTokenFromContext(r), r.FormValue("category_id")); err != nil {
		redirectWithError(w, r, "/admin/categories", userMessage(err))
		return
	}
	redirectWithSuccess(w, r, "/admin/categories", "Kategori dihapus")
}
