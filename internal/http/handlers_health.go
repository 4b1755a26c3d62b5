package httpapi

import "net/http"

// HandleHealth returns API health status and drink count
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:     "healthy",
		DrinkCount: h.catalog.Count(),
	}

	h.logger.Debug().Int("drink_count", resp.DrinkCount).Msg("health check")

	writeJSON(w, http.StatusOK, resp)
}
