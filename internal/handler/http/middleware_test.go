package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/handler/http/requestid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{name: "page listing", method: http.MethodGet, target: "/announcements?q=Notice&page=2&size=10", status: http.StatusOK, body: `{"data":[]}`, wantLevel: "INFO"},
		{name: "create", method: http.MethodPost, target: "/announcements", status: http.StatusCreated, body: `{"id":7}`, wantLevel: "INFO"},
		{name: "delete", method: http.MethodDelete, target: "/announcements/123", status: http.StatusNoContent, wantLevel: "INFO"},
		{name: "not found", method: http.MethodGet, target: "/announcements/999", status: http.StatusNotFound, body: `{"error":"not found"}`, wantLevel: "INFO"},
		{name: "store unavailable", method: http.MethodGet, target: "/announcements/all", status: http.StatusServiceUnavailable, body: `{"error":"service unavailable"}`, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			handler := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})))

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set(requestid.HeaderName, "req-abc")
			req.Header.Set("User-Agent", "test-agent/1.0")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.status, rr.Code)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, "request completed", record["msg"])
			assert.Equal(t, "req-abc", record["request_id"])
			assert.Equal(t, tt.method, record["method"])
			assert.Equal(t, req.URL.Path, record["path"])
			assert.Equal(t, req.URL.RawQuery, record["query"])
			assert.Equal(t, "test-agent/1.0", record["user_agent"])
			assert.Equal(t, float64(tt.status), record["status"])
			assert.Equal(t, float64(len(tt.body)), record["bytes"])
			assert.Contains(t, record, "duration")
			assert.Contains(t, record, "trace_id")
		})
	}
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    int
	}{
		{
			name:    "string panic",
			handler: func(w http.ResponseWriter, r *http.Request) { panic("something went wrong") },
			want:    http.StatusInternalServerError,
		},
		{
			name:    "error panic",
			handler: func(w http.ResponseWriter, r *http.Request) { panic(errors.New("nil map write in handler")) },
			want:    http.StatusInternalServerError,
		},
		{
			name:    "no panic",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
			want:    http.StatusOK,
		},
		{
			name: "panic after response started keeps status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"data":[`))
				panic("encoder blew up")
			},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Recover(discardLogger())(tt.handler)

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/announcements", nil))
			})

			assert.Equal(t, tt.want, rr.Code)
			assert.NotContains(t, rr.Body.String(), "nil map")
			if tt.want == http.StatusInternalServerError {
				assert.Contains(t, rr.Body.String(), "internal server error")
			}
		})
	}
}

func TestRecover_RepanicsAbortHandler(t *testing.T) {
	handler := Recover(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		bodySize int
		want     int
	}{
		{name: "within limit", maxBytes: 1024, bodySize: 512, want: http.StatusOK},
		{name: "exactly at limit", maxBytes: 1024, bodySize: 1024, want: http.StatusOK},
		{name: "over limit", maxBytes: 100, bodySize: 200, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LimitRequestBody(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					var maxErr *http.MaxBytesError
					assert.ErrorAs(t, err, &maxErr)
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))

			body := `{"owner_id":1,"title":"` + strings.Repeat("a", tt.bodySize) + `"}`
			body = body[:tt.bodySize]
			req := httptest.NewRequest(http.MethodPost, "/announcements", strings.NewReader(body))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
