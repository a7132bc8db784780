package request

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

func TestRequestID(t *testing.T) {
	capture := func(header string) (string, *httptest.ResponseRecorder) {
		var captured string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = requestcontext.RequestID(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("X-Request-ID", header)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return captured, w
	}

	t.Run("generates a UUID when absent", func(t *testing.T) {
		id, w := capture("")
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps a well formed client ID", func(t *testing.T) {
		id, _ := capture("trace.span_1234")
		assert.Equal(t, "trace.span_1234", id)
	})

	t.Run("replaces unsafe IDs", func(t *testing.T) {
		for _, bad := range []string{"id\nforged=1", "a b", strings.Repeat("a", MaxRequestIDLength+1)} {
			id, _ := capture(bad)
			assert.NotEqual(t, bad, id)
			assert.Len(t, id, 36)
		}
	})
}

func TestRequestTime(t *testing.T) {
	var first, second time.Time
	h := RequestTime(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = requestcontext.Now(r.Context())
		time.Sleep(2 * time.Millisecond)
		second = requestcontext.Now(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, first.IsZero())
	assert.Equal(t, first, second)
	assert.Equal(t, time.UTC, first.Location())
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"INTERNAL_ERROR"`)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestContentTypeJSON(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	cases := map[string]int{
		"application/json":                  http.StatusNoContent,
		"application/json; charset=utf-8":   http.StatusNoContent,
		"":                                  http.StatusNoContent,
		"text/plain":                        http.StatusUnsupportedMediaType,
		"application/x-www-form-urlencoded": http.StatusUnsupportedMediaType,
	}
	for ct, want := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		if ct != "" {
			req.Header.Set("Content-Type", ct)
		}
		w := httptest.NewRecorder()
		ContentTypeJSON(ok).ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, ct)
	}
}

func TestBodyLimit(t *testing.T) {
	read := func(body string) error {
		var readErr error
		h := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, readErr = io.ReadAll(r.Body)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		return readErr
	}

	require.NoError(t, read(strings.Repeat("x", 16)))
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, read(strings.Repeat("x", 17)), &maxErr)
}

type observed struct {
	endpoints []string
}

func (o *observed) ObserveEndpointLatency(endpoint string, _ float64) {
	o.endpoints = append(o.endpoints, endpoint)
}

func TestLatencyUsesRoutePattern(t *testing.T) {
	obs := &observed{}
	r := chi.NewRouter()
	r.Use(Latency(obs))
	r.Get("/auth/sessions/anonymous/{session_id}", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/auth/sessions/anonymous/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, []string{"GET /auth/sessions/anonymous/{session_id}", "unmatched"}, obs.endpoints)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://menu.example/"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	send := func(method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/auth/me", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	t.Run("echoes allowed origin", func(t *testing.T) {
		w := send(http.MethodGet, "https://menu.example")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://menu.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers allowed pre-flight", func(t *testing.T) {
		w := send(http.MethodOptions, "https://menu.example")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Session-Token")
	})

	t.Run("refuses foreign pre-flight", func(t *testing.T) {
		w := send(http.MethodOptions, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("passes requests without origin", func(t *testing.T) {
		w := send(http.MethodGet, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
