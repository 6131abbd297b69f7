package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traductor/traductor/app/client"
	clientmocks "github.com/traductor/traductor/app/client/mocks"
	"github.com/traductor/traductor/app/i18n"
	prefsmocks "github.com/traductor/traductor/app/prefs/mocks"
	"github.com/traductor/traductor/app/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return newTestHandlerWith(t, &clientmocks.APIMock{}, nil, Config{Locale: "en"})
}

func newTestHandlerWith(t *testing.T, api client.API, defaults *prefsmocks.KVStoreMock, cfg Config) *Handler {
	t.Helper()
	bundle, err := i18n.NewBundle("es")
	require.NoError(t, err)
	var h *Handler
	if defaults == nil {
		h, err = New(api, nil, bundle, cfg)
	} else {
		h, err = New(api, defaults, bundle, cfg)
	}
	require.NoError(t, err)
	return h
}

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	require.NoError(t, err)
	for _, name := range []string{"style.css", "app.js"} {
		f, err := sfs.Open(name)
		require.NoError(t, err, name)
		_ = f.Close()
	}
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	for _, name := range []string{"base.html", "form", "result"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestHandler_PageData(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	data := h.pageData(rec, req)

	assert.Equal(t, "en", data.Locale)
	assert.Equal(t, "auto", data.Source)
	assert.Equal(t, "en", data.Target)
	assert.Len(t, data.Sources, 6)
	assert.Len(t, data.Targets, 5)
	assert.Equal(t, langOption{Code: "auto", Label: "Detect language"}, data.Sources[0])
	assert.Equal(t, langOption{Code: "es", Label: "Spanish"}, data.Targets[0])
	assert.False(t, data.Dark)
	assert.Equal(t, "☀️ Light mode", data.ThemeLabel)
	assert.Equal(t, "Translate", data.T("button_translate"))
}

func TestCookieStore(t *testing.T) {
	t.Run("reads cookie named by last key segment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
		cs := &cookieStore{r: req, w: httptest.NewRecorder(), path: "/"}
		val, err := cs.Get(t.Context(), "prefs/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", string(val))
	})

	t.Run("no cookie and no fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		cs := &cookieStore{r: req, w: httptest.NewRecorder(), path: "/"}
		_, err := cs.Get(t.Context(), "prefs/theme")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("falls back to defaults store", func(t *testing.T) {
		defaults := &prefsmocks.KVStoreMock{
			GetFunc: func(_ context.Context, key string) ([]byte, error) {
				assert.Equal(t, "prefs/theme", key)
				return []byte("dark"), nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		cs := &cookieStore{r: req, w: httptest.NewRecorder(), path: "/", fallback: defaults}
		val, err := cs.Get(t.Context(), "prefs/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", string(val))
	})

	t.Run("fallback not found stays not found", func(t *testing.T) {
		defaults := &prefsmocks.KVStoreMock{
			GetFunc: func(context.Context, string) ([]byte, error) { return nil, store.ErrNotFound },
		}
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		cs := &cookieStore{r: req, w: httptest.NewRecorder(), path: "/", fallback: defaults}
		_, err := cs.Get(t.Context(), "prefs/theme")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("fallback error wrapped", func(t *testing.T) {
		defaults := &prefsmocks.KVStoreMock{
			GetFunc: func(context.Context, string) ([]byte, error) { return nil, errors.New("db down") },
		}
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		cs := &cookieStore{r: req, w: httptest.NewRecorder(), path: "/", fallback: defaults}
		_, err := cs.Get(t.Context(), "prefs/theme")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read default prefs/theme")
	})

	t.Run("set writes cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cs := &cookieStore{r: httptest.NewRequest(http.MethodPost, "/", http.NoBody), w: rec, path: "/tr/"}
		require.NoError(t, cs.Set(t.Context(), "prefs/theme", []byte("dark")))
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "theme", cookies[0].Name)
		assert.Equal(t, "dark", cookies[0].Value)
		assert.Equal(t, "/tr/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
	})
}

func TestHandler_URLHelpers(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, "/", h.cookiePath())
	assert.Equal(t, "/web/theme", h.url("/web/theme"))

	h.baseURL = "/tr"
	assert.Equal(t, "/tr/", h.cookiePath())
	assert.Equal(t, "/tr/web/theme", h.url("/web/theme"))
}
