package handlers

import (
	"errors"
	"net/http"

	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/service"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Error maps an error to the code and message put in the response payload. Non-zero codes
// are HTTP statuses.
func Error(err error) (int64, string) {
	var svcErr service.Err
	switch {
	case err == nil:
		return service.NoErr.Code, service.NoErr.Message
	case errors.As(err, &svcErr):
		return svcErr.Code, svcErr.Message
	case errors.Is(err, pruning.ErrInvalidBound):
		return service.InvalidBoundErr.Code, err.Error()
	default:
		return service.InternalErr.Code, err.Error()
	}
}

// Logged logs every request with the status it got.
func Logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)
		logging.Logger.Debugf("%s %s %d", r.Method, r.URL.Path, rw.statusCode)
	})
}
