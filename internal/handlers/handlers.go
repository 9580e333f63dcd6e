// Package handlers implements the HTTP surface of the report service.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sbeeredd04/trecgen/internal/config"
	"github.com/sbeeredd04/trecgen/internal/trec"
)

type Handler struct {
	gen *trec.Generator
	cfg *config.Config
}

// New wires a Handler over a ready Generator.
func New(gen *trec.Generator, cfg *config.Config) *Handler {
	return &Handler{gen: gen, cfg: cfg}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	h.writeJSON(w, code, map[string]string{
		"status":  "error",
		"message": message,
	})
}
