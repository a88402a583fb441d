// backend/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/imoveis-am/dashboard/backend/dataset"
	"github.com/imoveis-am/dashboard/backend/models"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Handler ERROR: marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("Handler API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// decodeCriteria reads a FilterRequest body and converts it into the
// dataset's criteria set. An empty body means no criteria; only the date
// strings need parsing, everything else maps directly.
func decodeCriteria(r *http.Request) (dataset.Criteria, error) {
	var req models.FilterRequest
	if r.Body != nil {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return dataset.Criteria{}, fmt.Errorf("invalid request body: %w", err)
		}
	}

	c := dataset.Criteria{
		Municipalities: req.Municipalities,
		Neighbourhoods: req.Neighbourhoods,
		Categories:     req.Categories,
		Types:          req.Types,
		Price:          req.Price,
		Rooms:          req.Rooms,
		Bathrooms:      req.Bathrooms,
		GarageSpaces:   req.GarageSpaces,
		Professional:   req.Professional,
		Search:         req.Search,
	}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return dataset.Criteria{}, fmt.Errorf("invalid start_date, use YYYY-MM-DD: %w", err)
		}
		c.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return dataset.Criteria{}, fmt.Errorf("invalid end_date, use YYYY-MM-DD: %w", err)
		}
		c.EndDate = &t
	}
	return c, nil
}
