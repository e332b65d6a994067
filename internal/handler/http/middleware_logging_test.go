package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the way withTraceID stores one.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		target        string
		handlerStatus int
		body          string
		wantLog       []string
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			target:        "/api/version",
			handlerStatus: http.StatusOK,
			body:          "v1",
			wantLog:       []string{`"level":"info"`, `"method":"GET"`, `"path":"/api/version"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:          "POST 400",
			method:        http.MethodPost,
			target:        "/api/auth/login",
			handlerStatus: http.StatusBadRequest,
			wantLog:       []string{`"level":"warn"`, `"method":"POST"`, `"status":400`, `"size":0`},
		},
		{
			name:          "500",
			method:        http.MethodPost,
			target:        "/api/auth/register",
			handlerStatus: http.StatusInternalServerError,
			wantLog:       []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.target, &buf))

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_OmitsQueryString(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(),
		makeRequest(http.MethodGet, "/api/auth/confirm-email?userId=u-1&token=c2VjcmV0", &buf))

	assert.Contains(t, buf.String(), `"path":"/api/auth/confirm-email"`)
	assert.NotContains(t, buf.String(), "c2VjcmV0")
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
