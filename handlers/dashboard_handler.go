// backend/handlers/dashboard_handler.go
package handlers

import (
	"log"
	"net/http"

	"github.com/imoveis-am/dashboard/backend/dataset"
	"github.com/imoveis-am/dashboard/backend/models"
	"github.com/imoveis-am/dashboard/backend/services"
)

// DashboardHandler answers the combined filter/aggregate query behind one
// dashboard refresh. It holds the base table by reference; every request
// computes a fresh view, so the handler itself is stateless.
type DashboardHandler struct {
	ds *dataset.Dataset
}

func NewDashboardHandler(ds *dataset.Dataset) *DashboardHandler {
	return &DashboardHandler{ds: ds}
}

// Query expects POST /api/dashboard with a FilterRequest body and returns
// the filtered rows plus every derived artifact in one payload.
func (h *DashboardHandler) Query(w http.ResponseWriter, r *http.Request) {
	criteria, err := decodeCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.ds.Filter(criteria)
	log.Printf("Handler: dashboard query matched %d of %d rows", len(view), h.ds.Len())

	resp := models.DashboardResponse{
		Rows:                 view,
		PriceHistogram:       services.PriceHistogram(view),
		CategoryCounts:       services.CountByCategory(view),
		PriceByNeighbourhood: services.PriceByNeighbourhood(view),
		PriceByMunicipality:  services.PriceByMunicipality(view),
		PriceByCategory:      services.PriceByCategory(view),
		Statistics:           services.DescribeView(view),
		Summary:              services.Summarize(view),
	}
	respondWithJSON(w, http.StatusOK, resp)
}
