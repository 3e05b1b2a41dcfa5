// Package middleware carries the request-level concerns of the web client:
// resolving the signed-in user from the access token cookie and guarding
// role-restricted pages with redirect-to-login behavior.
package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/logger"
)

const (
	AccessTokenCookie = "access_token"
	flashCookieError  = "flash_error"
)

// Key to store the session user in the request context
type key int

const userKey key = 0

// tokenKey carries the raw access token so handlers can pass it upstream.
const tokenKey key = 1

// Auth resolves the signed-in user from the access token cookie. The token is
// issued and signed by the backend; this client never holds the signing key,
// so claims are decoded without signature verification and the backend remains
// the authority on every state-changing request it receives with the token.
type Auth struct {
	secureCookies bool
}

func NewAuth(secureCookies bool) *Auth {
	return &Auth{secureCookies: secureCookies}
}

// NeedAuth requires a signed-in user, redirecting to login otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly additionally requires the admin role.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// OptionalAuth populates the user context when a valid token is present and
// passes through otherwise.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, err := a.extractUser(r)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user, token)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser injects the session user and raw token into the request context.
func WithUser(ctx context.Context, user *domain.SessionUser, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, tokenKey, token)
}

// extractUser decodes the session user from the cookie token.
// Returns (user, token, nil) on success.
func (a *Auth) extractUser(r *http.Request) (*domain.SessionUser, string, error) {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return nil, "", errNoToken
	}
	tokenString := cookie.Value

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, "", errInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", errInvalidClaims
	}

	if exp, ok := claims["exp"].(float64); ok && time.Now().Unix() >= int64(exp) {
		return nil, "", errExpired
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return nil, "", errInvalidClaims
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, "", errInvalidClaims
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, "", errInvalidClaims
	}
	avatar, _ := claims["avatar_url"].(string)

	return &domain.SessionUser{
		Id:        uid,
		Username:  username,
		Role:      role,
		AvatarURL: avatar,
	}, tokenString, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
	errExpired       = errorString("token expired")
)

type errorString string

func (e errorString) Error() string { return string(e) }

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, err := a.extractUser(r)
			if err != nil {
				if err == errInvalidClaims {
					logger.Log.Warn("unreadable access token, clearing cookie")
				}
				ClearSessionCookie(w, a.secureCookies)
				a.redirectToLogin(w, r, "Silakan masuk terlebih dahulu")
				return
			}

			if adminOnly && !user.IsAdmin() {
				a.redirectToLogin(w, r, "Halaman ini khusus admin")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user, token)))
		})
	}
}

// redirectToLogin stores the message in a short-lived flash cookie, base64
// encoded so non-ASCII survives the cookie value restrictions.
func (a *Auth) redirectToLogin(w http.ResponseWriter, r *http.Request, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieError,
		Value:    base64.StdEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ClearSessionCookie expires the access token cookie.
func ClearSessionCookie(w http.ResponseWriter, secureCookies bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashError reads and clears the flash error cookie.
func PopFlashError(w http.ResponseWriter, r *http.Request, secureCookies bool) string {
	cookie, err := r.Cookie(flashCookieError)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieError,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// GetUserFromContext retrieves the session user, nil when anonymous.
func GetUserFromContext(r *http.Request) *domain.SessionUser {
	user, ok := r.Context().Value(userKey).(*domain.SessionUser)
	if !ok {
		return nil
	}
	return user
}

// GetTokenFromContext retrieves the raw access token for upstream calls.
func GetTokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}
