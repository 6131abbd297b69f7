// Package web provides HTTP handlers for the web UI.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-pkgz/routegroup"

	"github.com/traductor/traductor/app/client"
	"github.com/traductor/traductor/app/enum"
	"github.com/traductor/traductor/app/i18n"
	"github.com/traductor/traductor/app/prefs"
	"github.com/traductor/traductor/app/store"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Locale  string // UI locale, empty means the bundle default
}

// Handler handles web UI requests.
type Handler struct {
	api      client.API
	defaults prefs.KVStore // server-wide preferences, used when the browser has none; may be nil
	bundle   *i18n.Bundle
	tmpl     *template.Template
	baseURL  string
	locale   string
}

// New creates a new web handler.
func New(api client.API, defaults prefs.KVStore, bundle *i18n.Bundle, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		api:      api,
		defaults: defaults,
		bundle:   bundle,
		tmpl:     tmpl,
		baseURL:  cfg.BaseURL,
		locale:   cfg.Locale,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/translate", h.handleTranslate)
	r.HandleFunc("POST /web/swap", h.handleSwap)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	for _, name := range []string{"form", "result"} {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}
	return tmpl, nil
}

// langOption is one entry of a language select.
type langOption struct {
	Code  string
	Label string
}

// templateData holds data passed to templates.
type templateData struct {
	T       func(key string) string
	Locale  string
	BaseURL string

	Sources []langOption
	Targets []langOption
	Source  string
	Target  string
	Text    string

	Result  string
	Outcome string // client.Outcome name of the last submission, empty before any

	Dark         bool
	ThemeChecked bool
	ThemeLabel   string
}

// SetDark implements prefs.View.
func (d *templateData) SetDark(dark bool) { d.Dark = dark }

// SetToggle implements prefs.View.
func (d *templateData) SetToggle(checked bool) { d.ThemeChecked = checked }

// SetLabel implements prefs.View.
func (d *templateData) SetLabel(label string) { d.ThemeLabel = label }

// pageData builds template data with the theme applied and the form filled from the request, if any.
func (h *Handler) pageData(w http.ResponseWriter, r *http.Request) *templateData {
	loc := h.localizer()
	data := &templateData{
		T:       func(key string) string { return loc.T(key, nil) },
		Locale:  loc.Locale(),
		BaseURL: h.baseURL,
		Source:  enum.LangAuto.String(),
		Target:  enum.LangEN.String(),
	}
	for _, l := range enum.LangValues {
		opt := langOption{Code: l.String(), Label: loc.T("lang_"+l.String(), nil)}
		data.Sources = append(data.Sources, opt)
		if l.IsTarget() {
			data.Targets = append(data.Targets, opt)
		}
	}
	if v := r.FormValue("source"); v != "" {
		data.Source = v
	}
	if v := r.FormValue("target"); v != "" {
		data.Target = v
	}
	data.Text = r.FormValue("text")

	// a broken defaults store still leaves the page usable in light mode
	_, _ = h.themeStore(w, r).Init(r.Context(), data)
	return data
}

// localizer returns the localizer for the configured UI locale.
func (h *Handler) localizer() *i18n.Localizer {
	return h.bundle.Localizer(h.locale)
}

// themeStore returns the theme preference store of this browser.
func (h *Handler) themeStore(w http.ResponseWriter, r *http.Request) *prefs.ThemeStore {
	cs := &cookieStore{r: r, w: w, path: h.cookiePath(), fallback: h.defaults}
	return prefs.NewThemeStore(cs, h.localizer())
}

// isHX tells if the request comes from the page script and expects a partial.
func isHX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(p string) string {
	return h.baseURL + p
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

// cookieStore is a prefs.KVStore keeping values in browser cookies, named by the last key segment.
// Reads fall back to the server-wide store when the cookie is absent.
type cookieStore struct {
	r        *http.Request
	w        http.ResponseWriter
	path     string
	fallback prefs.KVStore
}

func (c *cookieStore) Get(ctx context.Context, key string) ([]byte, error) {
	if cookie, err := c.r.Cookie(path.Base(key)); err == nil && cookie.Value != "" {
		return []byte(cookie.Value), nil
	}
	if c.fallback == nil {
		return nil, store.ErrNotFound
	}
	val, err := c.fallback.Get(ctx, key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to read default %s: %w", key, err)
	}
	return val, err
}

func (c *cookieStore) Set(_ context.Context, key string, value []byte) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     path.Base(key),
		Value:    string(value),
		Path:     c.path,
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
