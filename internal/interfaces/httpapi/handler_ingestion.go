package httpapi

import (
	"net/http"
	"strings"
)

const defaultScorecardBatch = 10

func (h *Handler) IngestTrendingPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTrendingPlayers")
	defer span.End()

	report, err := h.ingestionService.IngestTrendingPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "trending player ingestion failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) IngestRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestRecentMatches")
	defer span.End()

	report, err := h.ingestionService.IngestRecentMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "recent match ingestion failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) IngestMatchScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatchScorecard")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.ingestionService.IngestScorecard(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "scorecard ingestion failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"matchId": matchID})
}

func (h *Handler) IngestRecentScorecards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestRecentScorecards")
	defer span.End()

	limit, err := parseQueryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if limit <= 0 {
		limit = defaultScorecardBatch
	}

	report, err := h.ingestionService.IngestRecentScorecards(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "recent scorecard ingestion failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
