// backend/src/handlers/comparison_handler.go
package handlers

import (
	"net/http"

	"github.com/username/feecompare/backend/src/logger"
	"github.com/username/feecompare/backend/src/models"
	"github.com/username/feecompare/backend/src/services"
	"github.com/username/feecompare/backend/src/utils"
)

type ComparisonHandler struct {
	comparisonService services.ComparisonService
}

func NewComparisonHandler(service services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparisonService: service}
}

func (h *ComparisonHandler) HandleGetComparison(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	logger.FromContext(r.Context()).Info("Handling GetComparison", "sessionID", id)

	result, err := h.comparisonService.Comparison(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, result)
}

func (h *ComparisonHandler) HandleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	platformName := r.URL.Query().Get("platform")
	if platformName == "" {
		utils.SendJSONError(w, "platform is required", http.StatusBadRequest)
		return
	}

	breakdown, err := h.comparisonService.Breakdown(sessionID(r), platformName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, breakdown)
}

// HandleListPlatforms returns the full catalog, used by the frontend to build
// the current-platform checkboxes.
func (h *ComparisonHandler) HandleListPlatforms(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(models.AllPlatforms))
	for _, p := range models.AllPlatforms {
		names = append(names, p.String())
	}
	writeJSON(w, map[string][]string{"platforms": names})
}
