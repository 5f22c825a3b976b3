package ui

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Nitesh1413/ai-data-cleaner/adapters/tabular"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
	"github.com/Nitesh1413/ai-data-cleaner/internal/errors"
	"github.com/Nitesh1413/ai-data-cleaner/internal/render"
	"github.com/Nitesh1413/ai-data-cleaner/internal/store"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
)

// sampleSize limits how many raw values accompany an insight request
const sampleSize = 5

// handleUpload accepts a multipart CSV/XLSX upload, imports it and
// profiles it immediately. The report is recomputed from scratch; no
// state carries over between uploads.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		respondError(w, errors.InvalidInput("upload too large or malformed"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, errors.InvalidInput("multipart field 'file' is required"))
		return
	}
	defer file.Close()

	var tbl *table.Table
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		tbl, err = tabular.ReadCSV(file)
	case ".xlsx":
		tbl, err = tabular.ReadXLSX(file)
	default:
		respondError(w, errors.InvalidInput("only .csv and .xlsx files are supported"))
		return
	}
	if err != nil {
		respondError(w, errors.Wrap(errors.InvalidInput(err.Error()), "import failed"))
		return
	}

	report := a.profiler.Analyze(tbl)
	ds := a.store.Add(header.Filename, tbl, report)

	log.Printf("[App] dataset %s uploaded (%s, %d rows)", ds.ID, ds.Name, tbl.RowCount())
	respondJSON(w, http.StatusCreated, ds)
}

func (a *App) handleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.List())
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	ds, err := a.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ds.Report)
}

func (a *App) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	ds, err := a.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(render.ReportHTML(ds.Name, ds.Table.Columns, ds.Report))
}

func (a *App) handleColumnProfile(w http.ResponseWriter, r *http.Request) {
	ds, err := a.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	name := chi.URLParam(r, "name")
	if !ds.Table.HasColumn(name) {
		respondError(w, errors.NotFound("column"))
		return
	}
	respondJSON(w, http.StatusOK, ds.Report.Columns[name])
}

func (a *App) handleColumnInsights(w http.ResponseWriter, r *http.Request) {
	ds, err := a.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	name := chi.URLParam(r, "name")
	if !ds.Table.HasColumn(name) {
		respondError(w, errors.NotFound("column"))
		return
	}

	insights, err := a.insights.ColumnInsights(r.Context(), ports.ColumnInsightRequest{
		DatasetName: ds.Name,
		Profile:     ds.Report.Columns[name],
		Sample:      columnSample(ds, name),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, insights)
}

func (a *App) handleTransform(w http.ResponseWriter, r *http.Request) {
	ds, err := a.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	var body struct {
		Instruction string `json:"instruction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, errors.InvalidInput("request body must be JSON with an 'instruction' field"))
		return
	}

	code, err := a.insights.GenerateTransform(r.Context(), ports.TransformRequest{
		Instruction: body.Instruction,
		Columns:     ds.Table.Columns,
		Sample:      rowSample(ds),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, code)
}

func (a *App) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Delete(chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// columnSample takes the first few non-missing values of a column as
// display strings.
func columnSample(ds *store.Dataset, name string) []string {
	sample := []string{}
	for _, c := range ds.Table.ColumnValues(name) {
		if c.IsMissing() {
			continue
		}
		sample = append(sample, c.String())
		if len(sample) == sampleSize {
			break
		}
	}
	return sample
}

// rowSample renders the first few rows as string maps for transform
// generation context.
func rowSample(ds *store.Dataset) []map[string]string {
	sample := []map[string]string{}
	for _, row := range ds.Table.Rows {
		m := make(map[string]string, len(ds.Table.Columns))
		for _, col := range ds.Table.Columns {
			m[col] = row.Cell(col).String()
		}
		sample = append(sample, m)
		if len(sample) == sampleSize {
			break
		}
	}
	return sample
}
