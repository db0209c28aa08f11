package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/gofrs/uuid"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/httpx"
)

const (
	VisitorCookie     = "jwt"
	SessionCookie     = "sid"
	AccessTokenCookie = "access_token"
)

type ctxKey int

const visitorKey ctxKey = iota

// Visitor identifies the browser: ID survives restarts,
// SessionID lasts as long as the browser session.
type Visitor struct {
	ID        string
	SessionID string
}

func VisitorFrom(ctx context.Context) Visitor {
	v, _ := ctx.Value(visitorKey).(Visitor)
	return v
}

func WithVisitor(ctx context.Context, v Visitor) context.Context {
	return context.WithValue(ctx, visitorKey, v)
}

// Identify reads the signed visitor cookie, issuing a new one when missing or invalid,
// and the browser session cookie.
func Identify(ja *jwtauth.JWTAuth, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var visitor Visitor

			token, err := jwtauth.VerifyRequest(ja, r, jwtauth.TokenFromCookie)
			if err == nil && token != nil {
				visitor.ID = token.Subject()
			}
			if visitor.ID == "" {
				visitor.ID, err = issueVisitor(w, ja, ttl)
				if err != nil {
					httpx.LogInternalError(w, "middlewares.identify.visitor", err)
					return
				}
			}

			if sid, err := r.Cookie(SessionCookie); err == nil && sid.Value != "" {
				visitor.SessionID = sid.Value
			} else {
				id, err := uuid.NewV4()
				if err != nil {
					httpx.LogInternalError(w, "middlewares.identify.session", err)
					return
				}
				visitor.SessionID = id.String()
				http.SetCookie(w, &http.Cookie{
					Path:     "/",
					Name:     SessionCookie,
					Value:    visitor.SessionID,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), visitor)))
		})
	}
}

func issueVisitor(w http.ResponseWriter, ja *jwtauth.JWTAuth, ttl time.Duration) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	claims := map[string]interface{}{"sub": id.String()}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, ttl)
	_, tokenString, err := ja.Encode(claims)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     VisitorCookie,
		Value:    tokenString,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id.String(), nil
}

// ForwardToken makes the caller's access token, from the Authorization header
// or the access_token cookie, available to backend calls.
func ForwardToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearer(r)
		if token == "" {
			if c, err := r.Cookie(AccessTokenCookie); err == nil {
				token = c.Value
			}
		}
		if token != "" {
			r = r.WithContext(backend.WithAccessToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

func bearer(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return auth[7:]
	}
	return ""
}

// RequireToken rejects requests that carry no access token.
// Role checks are left to the backend.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if backend.AccessToken(r.Context()) == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
