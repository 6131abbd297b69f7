package translator

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyMemory_Translate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "Hello world", r.URL.Query().Get("q"))
			assert.Equal(t, "en|es", r.URL.Query().Get("langpair"))
			assert.Equal(t, "me@example.com", r.URL.Query().Get("de"))
			_, _ = w.Write([]byte(`{"responseData":{"translatedText":"Hola mundo","match":0.98},"responseStatus":200}`))
		}))
		defer ts.Close()

		svc := NewMyMemory("me@example.com")
		svc.baseURL = ts.URL
		res, err := svc.Translate(t.Context(), "en", "es", "Hello world")
		require.NoError(t, err)
		assert.Equal(t, "Hola mundo", res)
		assert.Equal(t, "mymemory", svc.Name())
	})

	t.Run("no email param", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := r.URL.Query()["de"]
			assert.False(t, ok)
			_, _ = w.Write([]byte(`{"responseData":{"translatedText":"Hallo"},"responseStatus":"200"}`))
		}))
		defer ts.Close()

		svc := NewMyMemory("")
		svc.baseURL = ts.URL
		res, err := svc.Translate(t.Context(), "en", "de", "Hello")
		require.NoError(t, err)
		assert.Equal(t, "Hallo", res)
	})

	t.Run("response status error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"responseData":{"translatedText":"INVALID LANGUAGE PAIR"},"responseStatus":"403","responseDetails":"INVALID LANGUAGE PAIR"}`))
		}))
		defer ts.Close()

		svc := NewMyMemory("")
		svc.baseURL = ts.URL
		_, err := svc.Translate(t.Context(), "en", "xx", "Hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INVALID LANGUAGE PAIR (403)")
	})

	t.Run("http error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer ts.Close()

		svc := NewMyMemory("")
		svc.baseURL = ts.URL
		_, err := svc.Translate(t.Context(), "en", "es", "Hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("bad json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer ts.Close()

		svc := NewMyMemory("")
		svc.baseURL = ts.URL
		_, err := svc.Translate(t.Context(), "en", "es", "Hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("connection refused", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		svc := NewMyMemory("")
		svc.baseURL = ts.URL
		_, err := svc.Translate(t.Context(), "en", "es", "Hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed")
	})
}
