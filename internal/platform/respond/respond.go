// Package respond writes the shared JSON envelope and converts panics into envelope errors.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/neurosell/health-server/internal/api"
	"github.com/neurosell/health-server/internal/platform/logging"
)

const msgInternalServerErr = "internal server error"

// Write serializes env as the response body with the given status.
func Write(w http.ResponseWriter, status int, env api.Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

// Recoverer converts panics into 500 envelope responses. http.ErrAbortHandler is re-panicked
// so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logging.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				if err := Write(w, http.StatusInternalServerError, api.NewErrorEnvelope(msgInternalServerErr)); err != nil {
					logging.LogError(r.Context(), "failed to render internal error", err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
