package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/internal/apiclient"
)

func TestPrefsLanguage(t *testing.T) {
	var got string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = LangFrom(r) }))

	cases := []struct {
		query, cookie, header, want string
	}{
		{"", "", "", "pt"},
		{"", "", "en-US,en;q=0.9", "en"},
		{"", "en", "pt-BR", "en"},
		{"pt", "en", "", "pt"},
		{"xx", "", "", "pt"},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/?lang="+tc.query, nil)
		if tc.cookie != "" {
			r.AddCookie(&http.Cookie{Name: "lang", Value: tc.cookie})
		}
		r.Header.Set("Accept-Language", tc.header)
		h.ServeHTTP(httptest.NewRecorder(), r)
		if got != tc.want {
			t.Errorf("query=%q cookie=%q header=%q: got %q want %q", tc.query, tc.cookie, tc.header, got, tc.want)
		}
	}
}

func TestFlashRoundTrip(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	FlashError(w, r, "delete_failed")
	c := w.Result().Cookies()[0]

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(c)
	w2 := httptest.NewRecorder()
	f := PopFlash(w2, r2)
	if f == nil || f.Kind != "error" || f.Message != "Não foi possível excluir o registro." {
		t.Fatalf("unexpected flash %+v", f)
	}
	if cleared := w2.Result().Cookies(); len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("flash cookie not cleared: %+v", cleared)
	}
	if PopFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) != nil {
		t.Fatal("expected no flash without cookie")
	}
}

func TestLoggingSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("missing request id header")
	}
	line := buf.String()
	if !strings.Contains(line, id) || !strings.Contains(line, `"status":418`) || !strings.Contains(line, `"path":"/dashboard"`) {
		t.Fatalf("unexpected access log %s", line)
	}

	keep := "6f1c4d1e-2b1a-4d5e-9c39-0a1b2c3d4e5f"
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, keep)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Header().Get(RequestIDHeader) != keep {
		t.Fatalf("incoming request id not reused")
	}
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestBearerForwardsToken(t *testing.T) {
	var got string
	h := Bearer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = apiclient.TokenFrom(r.Context())
		_, _ = io.WriteString(w, "ok")
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{Email: "a@pit.com", Token: "tok"}))
	h.ServeHTTP(httptest.NewRecorder(), r)
	if got != "tok" {
		t.Fatalf("token not forwarded, got %q", got)
	}
}
