// Package reports serves previously persisted consolidation results.
package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"statement_consolidator/pkg/core/report"
	"statement_consolidator/pkg/core/store"
)

var repo *store.ReportRepo

func InitHandler(r *store.ReportRepo) {
	repo = r
}

type listEntry struct {
	ID        string   `json:"id"`
	Filenames []string `json:"filenames"`
	CreatedAt string   `json:"created_at"`
}

// HandleList returns recent reports, newest first. ?limit=N caps the count.
func HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")

	if repo == nil {
		http.Error(w, "persistence not configured", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := repo.List(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]listEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, listEntry{
			ID:        rec.ID.String(),
			Filenames: rec.Filenames,
			CreatedAt: rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	json.NewEncoder(w).Encode(entries)
}

// HandleGet returns one report by ID (?id=...). ?format=markdown or
// ?format=xlsx re-render the stored projection.
func HandleGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if repo == nil {
		http.Error(w, "persistence not configured", http.StatusServiceUnavailable)
		return
	}

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "invalid or missing id", http.StatusBadRequest)
		return
	}

	rec, err := repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(report.WriteMarkdown(rec.Report)))

	case "xlsx":
		data, err := report.ExcelBytes(rec.Report)
		if err != nil {
			http.Error(w, "failed to render workbook", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="consolidated_financials.xlsx"`)
		w.Write(data)

	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rec)
	}
}
