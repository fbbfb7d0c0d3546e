// backend/src/handlers/export_handler.go
package handlers

import (
	"net/http"

	"github.com/username/feecompare/backend/src/logger"
	"github.com/username/feecompare/backend/src/services"
)

type ExportHandler struct {
	comparisonService services.ComparisonService
}

func NewExportHandler(service services.ComparisonService) *ExportHandler {
	return &ExportHandler{comparisonService: service}
}

func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	logger.FromContext(r.Context()).Info("Handling ExportCSV", "sessionID", id)

	data, err := h.comparisonService.ExportCSV(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="Platform_Fee_Comparison.csv"`)
	w.Write(data)
}

func (h *ExportHandler) HandleExportPDF(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	logger.FromContext(r.Context()).Info("Handling ExportPDF", "sessionID", id)

	data, err := h.comparisonService.ExportPDF(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Platform_Fee_Comparison.pdf"`)
	w.Write(data)
}
