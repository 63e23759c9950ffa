// Package upload exposes the consolidation pipeline over HTTP: a multipart
// batch of statements in, a consolidated workbook (or markdown preview) out.
package upload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"statement_consolidator/pkg/core/pipeline"
	"statement_consolidator/pkg/core/report"
	"statement_consolidator/pkg/models"
)

var orchestrator *pipeline.Orchestrator

// Uploads are financial statements, not media files; 64MB covers even
// scanned multi-year annual reports.
const maxUploadBytes = 64 << 20

func InitHandler(orch *pipeline.Orchestrator) {
	orchestrator = orch
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// HandleUploadAndConvert accepts a multipart form with one or more "files"
// parts plus an optional "prompt" field, runs the pipeline, and streams
// back the consolidated workbook. ?format=markdown returns a text preview
// instead, ?format=json the raw projection.
func HandleUploadAndConvert(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if orchestrator == nil {
		writeError(w, http.StatusServiceUnavailable, "pipeline not initialized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}
	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, "No files part in the request")
		return
	}
	customPrompt := r.FormValue("prompt")

	var docs []models.SourceDocument
	for _, part := range parts {
		if part.Filename == "" {
			continue
		}
		f, err := part.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to open %s: %v", part.Filename, err))
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read %s: %v", part.Filename, err))
			return
		}
		docs = append(docs, models.SourceDocument{
			Filename: part.Filename,
			MimeType: part.Header.Get("Content-Type"),
			Content:  content,
		})
	}
	if len(docs) == 0 {
		writeError(w, http.StatusBadRequest, "No selected files")
		return
	}

	result, err := orchestrator.ProcessDocuments(r.Context(), docs, customPrompt)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("X-Report-ID", result.ID.String())
		fmt.Fprint(w, report.WriteMarkdown(result.Report))

	case "json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)

	default:
		data, err := report.ExcelBytes(result.Report)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to generate the Excel file.")
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="consolidated_financials.xlsx"`)
		w.Header().Set("X-Report-ID", result.ID.String())
		w.Write(data)
	}
}
