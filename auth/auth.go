package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

type ctxKey string

const (
	sessionCookieName = "session"
	identityCtxKey    = ctxKey("identity")
	sessionTTL        = 14 * 24 * time.Hour
)

// Identity is what the session cookie remembers about the signed in user.
// Token is the API bearer token; it is empty when the dashboard owns the database.
type Identity struct {
	UserID uint   `json:"uid,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token,omitempty"`
	// Expires is the unix time after which the session is rejected.
	Expires int64 `json:"exp,omitempty"`
}

var (
	mu           sync.RWMutex
	secret       = "devsessionsecret"
	secureCookie bool
)

// SetSecret configures the key used to sign session cookies.
func SetSecret(s string) {
	if s == "" {
		return
	}
	mu.Lock()
	secret = s
	mu.Unlock()
}

// SetSecureCookies marks session cookies Secure (HTTPS only).
func SetSecureCookies(on bool) {
	mu.Lock()
	secureCookie = on
	mu.Unlock()
}

// Secret returns the session signing key.
func Secret() string {
	mu.RLock()
	defer mu.RUnlock()
	return secret
}

func sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie carrying id.
func CreateSession(w http.ResponseWriter, id Identity) error {
	expires := time.Now().Add(sessionTTL)
	id.Expires = expires.Unix()
	b, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	mu.RLock()
	secure := secureCookie
	mu.RUnlock()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sign(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
	return nil
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie and returns its identity.
func ParseSession(r *http.Request) (Identity, bool) {
	var id Identity
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return id, false
	}
	payload, sig, ok := strings.Cut(c.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(sign(payload))) {
		return id, false
	}
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return id, false
	}
	if err := json.Unmarshal(b, &id); err != nil || id.Email == "" {
		return Identity{}, false
	}
	if id.Expires == 0 || time.Now().Unix() > id.Expires {
		return Identity{}, false
	}
	return id, true
}

// WithIdentity stores id in context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// IdentityFrom extracts the identity stored by Middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey).(Identity)
	return id, ok
}

// Middleware attaches the session identity to the request context if present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := ParseSession(r); ok {
			r = r.WithContext(WithIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects to /login if not authenticated (HTML) or returns 401 JSON.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); !ok {
			Unauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Unauthorized clears the session and sends the client to the login page, or
// answers 401 JSON to API callers.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	ClearSession(w)
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"unauthorized"}`)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
