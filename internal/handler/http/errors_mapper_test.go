package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid session", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"wrapped mail rejection", fmt.Errorf("sending: %w", adapter.ErrMailRejected), http.StatusBadGateway},
		{"mail unauthorized", adapter.ErrMailUnauthorized, http.StatusBadGateway},
		{"store failure", fmt.Errorf("lookup: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"token creation", service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
