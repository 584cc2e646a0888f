package config

import (
	"encoding/json"
	"net/http"

	"fund_performance/pkg/core/config"
)

type Response struct {
	UserAgent     string `json:"user_agent"`
	HTTPTimeout   string `json:"http_timeout"`
	Concurrency   int    `json:"concurrency"`
	MaxFunds      int    `json:"max_funds"`
	DirectorySize int    `json:"directory_size"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Config        config.Config
	DirectorySize int
}

// NewHandler creates a new config handler
func NewHandler(cfg config.Config, directorySize int) *Handler {
	return &Handler{
		Config:        cfg,
		DirectorySize: directorySize,
	}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	resp := Response{
		UserAgent:     h.Config.UserAgent,
		HTTPTimeout:   h.Config.HTTPTimeout.String(),
		Concurrency:   h.Config.Concurrency,
		MaxFunds:      h.Config.MaxFunds,
		DirectorySize: h.DirectorySize,
	}
	json.NewEncoder(w).Encode(resp)
}
