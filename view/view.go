package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/i18n"
	"github.com/depositodopitty/pit/templates"
)

var (
	mu       sync.RWMutex
	source   fs.FS = templates.FS
	devMode        = os.Getenv("DEV") == "1"
	tplCache       = map[string]*template.Template{}

	langResolver = func(_ *http.Request) string { return i18n.Default }
)

func init() {
	if devMode {
		for _, c := range []string{"templates", "../templates", "../../templates"} {
			if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
				source = os.DirFS(filepath.Clean(c))
				break
			}
		}
	}
}

// SetLangResolver allows the host app to provide the language of a request.
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		mu.Lock()
		langResolver = f
		mu.Unlock()
	}
}

// SetSource overrides the template file system (tests, custom setups) and
// drops cached templates.
func SetSource(fsys fs.FS, dev bool) {
	mu.Lock()
	source = fsys
	devMode = dev
	tplCache = map[string]*template.Template{}
	mu.Unlock()
}

func lang(r *http.Request) string {
	mu.RLock()
	f := langResolver
	mu.RUnlock()
	return f(r)
}

// parse loads layout.html, every partial and the page. Pages define a
// "content" block rendered by the layout.
func parse(name string) (*template.Template, error) {
	mu.RLock()
	t, ok := tplCache[name]
	fsys, dev := source, devMode
	mu.RUnlock()
	if ok && !dev {
		return t, nil
	}
	t, err := template.New("layout.html").Funcs(Funcs(i18n.Default)).ParseFS(fsys, "layout.html", "partials/*.html", name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if !dev {
		mu.Lock()
		tplCache[name] = t
		mu.Unlock()
	}
	return t, nil
}

// Render executes page name inside the layout. Common values (Year, Lang,
// IsLoggedIn, Identity) are injected unless data already sets them.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	return RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit status code. The page is rendered
// to a buffer first so a template error never leaves a half written response.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	base, err := parse(name)
	if err != nil {
		return err
	}
	l := lang(r)
	t, err := base.Clone()
	if err != nil {
		return err
	}
	t.Funcs(Funcs(l))

	if data == nil {
		data = map[string]any{}
	}
	setDefault(data, "Year", time.Now().Year())
	setDefault(data, "Lang", l)
	if _, exists := data["IsLoggedIn"]; !exists {
		id, ok := auth.IdentityFrom(r.Context())
		data["IsLoggedIn"] = ok
		data["Identity"] = id
	}
	setDefault(data, "Path", r.URL.Path)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

func setDefault(data map[string]any, key string, v any) {
	if _, exists := data[key]; !exists {
		data[key] = v
	}
}
