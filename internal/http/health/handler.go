package health

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/neurosell/health-server/internal/api"
	"github.com/neurosell/health-server/internal/platform/logging"
	"github.com/neurosell/health-server/internal/platform/respond"
)

// Handler answers any request with 200 and the health envelope.
// Method, path, headers and body are ignored.
func Handler(w http.ResponseWriter, r *http.Request) {
	if err := respond.Write(w, http.StatusOK, api.NewHealthEnvelope()); err != nil {
		logging.LogWarn(r.Context(), "failed to write health response", zap.Error(err))
	}
}
