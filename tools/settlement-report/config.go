package main

import (
	"encoding/json"
	"os"
)

// ReportConfig represents the configuration file structure
type ReportConfig struct {
	TemporalHost string `json:"temporal_host"`
	Namespace    string `json:"namespace"`
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*ReportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ReportConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
