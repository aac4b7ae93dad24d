package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/cricverse/cricstats/internal/domain/player"
)

type playerUpsertRequest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name" validate:"required,max=120"`
	Country        string  `json:"country" validate:"required,max=60"`
	Role           string  `json:"role" validate:"omitempty,oneof=Batter Bowler All-rounder Wicket-keeper"`
	BattingStyle   string  `json:"battingStyle" validate:"max=60"`
	BowlingStyle   string  `json:"bowlingStyle" validate:"max=60"`
	TotalRuns      int64   `json:"totalRuns" validate:"gte=0"`
	BattingAverage float64 `json:"battingAverage" validate:"gte=0"`
	StrikeRate     float64 `json:"strikeRate" validate:"gte=0"`
	TotalWickets   int64   `json:"totalWickets" validate:"gte=0"`
	BowlingAverage float64 `json:"bowlingAverage" validate:"gte=0"`
	EconomyRate    float64 `json:"economyRate" validate:"gte=0"`
}

type playerDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	Role           string  `json:"role"`
	BattingStyle   string  `json:"battingStyle,omitempty"`
	BowlingStyle   string  `json:"bowlingStyle,omitempty"`
	TotalRuns      int64   `json:"totalRuns"`
	BattingAverage float64 `json:"battingAverage"`
	StrikeRate     float64 `json:"strikeRate"`
	TotalWickets   int64   `json:"totalWickets"`
	BowlingAverage float64 `json:"bowlingAverage"`
	EconomyRate    float64 `json:"economyRate"`
	CreatedAtUTC   string  `json:"createdAtUtc,omitempty"`
	UpdatedAtUTC   string  `json:"updatedAtUtc,omitempty"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, playerFromRequest(req, ""))
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "player_name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req playerUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdatePlayer(ctx, playerFromRequest(req, playerID))
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": playerID})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListPlayers(ctx, limit, offset)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func playerFromRequest(req playerUpsertRequest, pathID string) player.Player {
	id := strings.TrimSpace(req.ID)
	if pathID != "" {
		id = pathID
	}

	return player.Player{
		ID:             id,
		Name:           req.Name,
		Country:        req.Country,
		Role:           player.Role(req.Role),
		BattingStyle:   req.BattingStyle,
		BowlingStyle:   req.BowlingStyle,
		TotalRuns:      req.TotalRuns,
		BattingAverage: req.BattingAverage,
		StrikeRate:     req.StrikeRate,
		TotalWickets:   req.TotalWickets,
		BowlingAverage: req.BowlingAverage,
		EconomyRate:    req.EconomyRate,
	}
}

func playerToDTO(v player.Player) playerDTO {
	dto := playerDTO{
		ID:             v.ID,
		Name:           v.Name,
		Country:        v.Country,
		Role:           string(v.Role),
		BattingStyle:   v.BattingStyle,
		BowlingStyle:   v.BowlingStyle,
		TotalRuns:      v.TotalRuns,
		BattingAverage: v.BattingAverage,
		StrikeRate:     v.StrikeRate,
		TotalWickets:   v.TotalWickets,
		BowlingAverage: v.BowlingAverage,
		EconomyRate:    v.EconomyRate,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAtUTC = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !v.UpdatedAt.IsZero() {
		dto.UpdatedAtUTC = v.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
