// backend/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/imoveis-am/dashboard/backend/config"
	"github.com/imoveis-am/dashboard/backend/handlers"
	"github.com/imoveis-am/dashboard/backend/ingest"
)

func main() {
	log.Println("Starting Imóveis Dashboard Backend...")

	// .env is optional; it can carry PORT and CONFIG_PATH overrides.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "backend/config/config.yaml"
		}
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, archive: %s",
		config.AppConfig.Server.Port, config.AppConfig.Dataset.ArchivePath)

	// One-time ingestion: the base table lives for the whole process and
	// is read-only afterwards.
	ds, err := ingest.LoadDataset(config.AppConfig.Dataset)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	log.Printf("Base table ready with %d listings", ds.Len())

	dashboardHandler := handlers.NewDashboardHandler(ds)
	exportHandler := handlers.NewExportHandler(ds)
	listingHandler := handlers.NewListingHandler(ds)

	r := mux.NewRouter()
	r.HandleFunc("/api/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status": "ok", "listings": %d}`, ds.Len())
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/dashboard", dashboardHandler.Query).Methods(http.MethodPost)
	r.HandleFunc("/api/export/excel", exportHandler.Excel).Methods(http.MethodPost)
	r.HandleFunc("/api/export/csv", exportHandler.CSV).Methods(http.MethodPost)
	r.HandleFunc("/api/listings/{id:[0-9]+}/thumbnail", listingHandler.Thumbnail).Methods(http.MethodGet)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s", serverAddr)
	if err := http.ListenAndServe(serverAddr, r); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
