package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

// errorStatusMap holds the status of service errors that are not plain
// internal failures. Expected workflow outcomes never reach it: they come
// back as models.Result.
var errorStatusMap = map[error]int{
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	adapter.ErrMailUnauthorized: http.StatusBadGateway,
	adapter.ErrMailBadRequest:   http.StatusBadGateway,
	adapter.ErrMailRejected:     http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
