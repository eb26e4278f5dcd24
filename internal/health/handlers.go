package health

import (
	"net/http"
	"time"

	"github.com/noah-isme/cielo-link-api/internal/common"
)

// Handler exposes the liveness endpoint.
type Handler struct {
	Now func() time.Time
}

type statusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Status reports liveness with the current server time.
func (h Handler) Status(w http.ResponseWriter, _ *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	common.JSON(w, http.StatusOK, statusResponse{
		Status:    "ok",
		Timestamp: now().UTC().Format(time.RFC3339),
	})
}
