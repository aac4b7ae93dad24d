package httpapi

import (
	"net/http"
	"strings"

	"github.com/cricverse/cricstats/internal/catalog"
	"github.com/cricverse/cricstats/internal/usecase"
)

type queryEntryDTO struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Params      []queryParamDTO `json:"params"`
	Columns     []string        `json:"columns"`
}

type queryParamDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type queryResultDTO struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (h *Handler) ListAnalyticsQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnalyticsQueries")
	defer span.End()

	entries := h.analyticsService.ListQueries(ctx)
	items := make([]queryEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, queryEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunAnalyticsQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalyticsQuery")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("queryName"))
	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}

	result, err := h.analyticsService.RunQuery(ctx, name, params)
	if err != nil {
		h.logger.WarnContext(ctx, "run analytics query failed", "query", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, queryResultToDTO(result))
}

func queryEntryToDTO(e catalog.Entry) queryEntryDTO {
	params := make([]queryParamDTO, 0, len(e.Params))
	for _, p := range e.Params {
		params = append(params, queryParamDTO{Name: p.Name, Type: string(p.Type)})
	}

	columns := make([]string, 0, len(e.Columns))
	for _, c := range e.Columns {
		columns = append(columns, c.Name)
	}

	return queryEntryDTO{
		Name:        e.Name,
		Title:       e.Title,
		Description: e.Description,
		Params:      params,
		Columns:     columns,
	}
}

func queryResultToDTO(result usecase.QueryResult) queryResultDTO {
	rows := result.Rows.Values
	if rows == nil {
		rows = [][]any{}
	}

	return queryResultDTO{
		Name:    result.Entry.Name,
		Title:   result.Entry.Title,
		Columns: append([]string(nil), result.Rows.Columns...),
		Rows:    rows,
	}
}
