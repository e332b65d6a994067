package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testClientBaseURL = "http://localhost:3000"

// serviceMocks groups the service doubles behind a test Handler.
type serviceMocks struct {
	auth    *mock.MockAuthService
	user    *mock.MockUserService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services. Calls that were not
// expected fail the test.
func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		user:    mock.NewMockUserService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:    mocks.auth,
		UserService:    mocks.user,
		AppInfoService: mocks.appInfo,
	}

	return NewHandler(svcs, config.App{ClientBaseURL: testClientBaseURL}, logger.Nop()), mocks
}

// serve sends a request through the full router, middleware included.
func serve(h *Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{ClientBaseURL: testClientBaseURL}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testClientBaseURL, h.clientBaseURL)
	assert.NotNil(t, h.validator)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.App{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

func TestLoginRedirectURL(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		confirmed bool
		want      string
	}{
		{"confirmed", "http://localhost:3000", true, "http://localhost:3000/auth/login?emailConfirmed=true"},
		{"not confirmed", "http://localhost:3000", false, "http://localhost:3000/auth/login?emailConfirmed=false"},
		{"trailing slash", "https://app.example.com/", true, "https://app.example.com/auth/login?emailConfirmed=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{clientBaseURL: tt.base}
			assert.Equal(t, tt.want, h.loginRedirectURL(tt.confirmed))
		})
	}
}

func TestServe_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/nonexistent", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
