// backend/handlers/listing_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/imoveis-am/dashboard/backend/dataset"
	"github.com/imoveis-am/dashboard/backend/utils"
)

// ListingHandler serves per-row lookups, currently just the thumbnail URL
// the image popup needs.
type ListingHandler struct {
	ds *dataset.Dataset
}

func NewListingHandler(ds *dataset.Dataset) *ListingHandler {
	return &ListingHandler{ds: ds}
}

// Thumbnail expects GET /api/listings/{id}/thumbnail and returns the
// literal URL embedded in that row's stored markup fragment, or 404 when
// the row does not exist or carries no image.
func (h *ListingHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	listing, ok := h.ds.ByID(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "listing not found")
		return
	}

	url, ok := utils.ExtractThumbnailURL(listing.ThumbnailLink)
	if !ok {
		respondWithError(w, http.StatusNotFound, "listing has no thumbnail")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"url": url})
}
