// backend/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatasetConfig struct {
	ArchivePath string `yaml:"archive_path"`
	// Data-quality gate applied once at ingestion; rows with a price
	// outside [PriceMin, PriceMax] never enter the base table.
	PriceMin float64 `yaml:"price_min"`
	PriceMax float64 `yaml:"price_max"`
}

type ExportConfig struct {
	SheetName     string `yaml:"sheet_name"`
	ExcelFilename string `yaml:"excel_filename"`
	CSVFilename   string `yaml:"csv_filename"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Export  ExportConfig  `yaml:"export"`
}

var AppConfig Config

// LoadConfig reads configuration from the given yaml file and fills in
// defaults for anything the file leaves out. The PORT environment variable
// (possibly loaded from .env) overrides the configured server port.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}
	if port := os.Getenv("PORT"); port != "" {
		AppConfig.Server.Port = port
	}
	if AppConfig.Dataset.ArchivePath == "" {
		AppConfig.Dataset.ArchivePath = "imoveis-residencial.zip"
	}
	if AppConfig.Dataset.PriceMin == 0 {
		AppConfig.Dataset.PriceMin = 100
	}
	if AppConfig.Dataset.PriceMax == 0 {
		AppConfig.Dataset.PriceMax = 10000
	}
	if AppConfig.Export.SheetName == "" {
		AppConfig.Export.SheetName = "Dados Filtrados"
	}
	if AppConfig.Export.ExcelFilename == "" {
		AppConfig.Export.ExcelFilename = "imoveis_filtrados.xlsx"
	}
	if AppConfig.Export.CSVFilename == "" {
		AppConfig.Export.CSVFilename = "imoveis_filtrados_debug.csv"
	}

	return nil
}
