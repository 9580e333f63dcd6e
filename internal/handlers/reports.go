package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sbeeredd04/trecgen/internal/report"
)

// HandleGenerate serves POST /reports/trec. The request body may carry an
// inspection JSON export; with an empty body the configured input path is
// used. The generated PDF is written to the output directory under a unique
// name and its location returned.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	start := time.Now()

	rep, err := h.readReport(r)
	if err != nil {
		h.reportError(w, err)
		return
	}

	data, err := h.gen.Generate(r.Context(), rep)
	if err != nil {
		h.reportError(w, err)
		return
	}

	if err := os.MkdirAll(h.cfg.OutputDir, 0o755); err != nil {
		h.writeError(w, "creating output directory: "+err.Error(), http.StatusInternalServerError)
		return
	}
	name := fmt.Sprintf("trec_report_%s.pdf", uuid.NewString())
	path := filepath.Join(h.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		h.writeError(w, "writing report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	elapsed := time.Since(start)
	slog.Info("report generated", "file", path, "bytes", len(data), "elapsed", elapsed)

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"status":          "success",
		"message":         "TREC report generated successfully",
		"file_path":       path,
		"file_name":       name,
		"generation_time": elapsed.Seconds(),
	})
}

// HandleFields serves POST /reports/fields: the field mapping preview
// without document generation.
func (h *Handler) HandleFields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rep, err := h.readReport(r)
	if err != nil {
		h.reportError(w, err)
		return
	}

	fields, err := h.gen.FieldPreview(rep)
	if err != nil {
		h.reportError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"fields": fields,
	})
}

func (h *Handler) readReport(r *http.Request) (*report.Report, error) {
	if r.Body != nil && r.ContentLength != 0 {
		defer r.Body.Close()
		return report.Parse(r.Body)
	}
	return report.ParseFile(h.cfg.InspectionDataPath)
}

func (h *Handler) reportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, report.ErrInvalidInput):
		h.writeError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, os.ErrNotExist):
		h.writeError(w, err.Error(), http.StatusNotFound)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}
