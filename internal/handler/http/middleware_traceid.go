package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength caps client-supplied trace ids; longer ones are
	// replaced.
	maxTraceIDLength = 128
)

// withTraceID tags every request with a trace id. A well-formed X-Trace-ID
// request header is reused, otherwise a new UUID is generated. The id is
// echoed in the response header and attached to a child logger stored in the
// request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// validTraceID accepts non-empty ids of printable ASCII without spaces.
func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return false
	}

	for i := 0; i < len(traceID); i++ {
		if traceID[i] <= ' ' || traceID[i] > '~' {
			return false
		}
	}

	return true
}
