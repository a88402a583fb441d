// backend/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/imoveis-am/dashboard/backend/config"
	"github.com/imoveis-am/dashboard/backend/dataset"
	"github.com/imoveis-am/dashboard/backend/services"
)

// ExportHandler serves the two download formats. Both accept the same
// FilterRequest body as the dashboard query so a download always matches
// what the user is looking at.
type ExportHandler struct {
	ds *dataset.Dataset
}

func NewExportHandler(ds *dataset.Dataset) *ExportHandler {
	return &ExportHandler{ds: ds}
}

// Excel expects POST /api/export/excel and responds with an xlsx
// attachment holding the filtered view on a single named sheet.
func (h *ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	criteria, err := decodeCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.ds.Filter(criteria)
	payload, err := services.ExportExcel(view, config.AppConfig.Export.SheetName)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("failed to build Excel export: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", config.AppConfig.Export.ExcelFilename))
	w.Write(payload)
}

// CSV expects POST /api/export/csv and responds with the debug-labeled
// delimited-text attachment.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	criteria, err := decodeCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.ds.Filter(criteria)
	payload, err := services.ExportCSV(view)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("failed to build CSV export: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", config.AppConfig.Export.CSVFilename))
	w.Write(payload)
}
