package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/usecase"
)

type matchUpsertRequest struct {
	ID            string `json:"id"`
	Description   string `json:"description" validate:"max=200"`
	Format        string `json:"format" validate:"omitempty,oneof=Test ODI T20"`
	Status        string `json:"status" validate:"omitempty,oneof=completed live upcoming"`
	StartTime     string `json:"startTime" validate:"omitempty"`
	Team1         string `json:"team1" validate:"required,max=80"`
	Team2         string `json:"team2" validate:"required,max=80"`
	VenueID       string `json:"venueId"`
	SeriesID      string `json:"seriesId"`
	Winner        string `json:"winner" validate:"max=80"`
	VictoryMargin int64  `json:"victoryMargin" validate:"gte=0"`
	VictoryType   string `json:"victoryType" validate:"omitempty,oneof=runs wickets"`
	TossWinner    string `json:"tossWinner" validate:"max=80"`
	TossDecision  string `json:"tossDecision" validate:"omitempty,oneof=bat bowl"`
}

type matchDTO struct {
	ID            string `json:"id"`
	Description   string `json:"description,omitempty"`
	Format        string `json:"format"`
	Status        string `json:"status"`
	StartTime     string `json:"startTime,omitempty"`
	Team1         string `json:"team1"`
	Team2         string `json:"team2"`
	VenueID       string `json:"venueId,omitempty"`
	SeriesID      string `json:"seriesId,omitempty"`
	Winner        string `json:"winner,omitempty"`
	VictoryMargin int64  `json:"victoryMargin,omitempty"`
	VictoryType   string `json:"victoryType,omitempty"`
	TossWinner    string `json:"tossWinner,omitempty"`
	TossDecision  string `json:"tossDecision,omitempty"`
}

type scorecardDTO struct {
	MatchID      string              `json:"matchId"`
	Batting      []battingInningsDTO `json:"batting"`
	Bowling      []bowlingSpellDTO   `json:"bowling"`
	Partnerships []partnershipDTO    `json:"partnerships"`
}

type battingInningsDTO struct {
	InningsNo  int     `json:"inningsNo"`
	PlayerID   string  `json:"playerId"`
	Team       string  `json:"team,omitempty"`
	Position   int     `json:"position"`
	Runs       int64   `json:"runs"`
	Balls      int64   `json:"balls"`
	Fours      int64   `json:"fours"`
	Sixes      int64   `json:"sixes"`
	StrikeRate float64 `json:"strikeRate"`
}

type bowlingSpellDTO struct {
	InningsNo    int     `json:"inningsNo"`
	PlayerID     string  `json:"playerId"`
	Team         string  `json:"team,omitempty"`
	Overs        float64 `json:"overs"`
	Balls        int64   `json:"balls"`
	Maidens      int64   `json:"maidens"`
	RunsConceded int64   `json:"runsConceded"`
	Wickets      int64   `json:"wickets"`
	Economy      float64 `json:"economy"`
}

type partnershipDTO struct {
	InningsNo int    `json:"inningsNo"`
	Batter1ID string `json:"batter1Id"`
	Batter2ID string `json:"batter2Id"`
	Runs      int64  `json:"runs"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := matchFromRequest(req, "")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.CreateMatch(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req matchUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := matchFromRequest(req, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateMatch(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": matchID})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListMatches(ctx, limit, offset)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchScorecard")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	card, err := h.matchService.GetScorecard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorecardToDTO(card))
}

func matchFromRequest(req matchUpsertRequest, pathID string) (match.Match, error) {
	id := strings.TrimSpace(req.ID)
	if pathID != "" {
		id = pathID
	}

	var startTime time.Time
	if raw := strings.TrimSpace(req.StartTime); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: startTime must be RFC 3339", usecase.ErrInvalidInput)
		}
		startTime = parsed
	}

	return match.Match{
		ID:            id,
		Description:   req.Description,
		Format:        match.Format(req.Format),
		Status:        match.Status(req.Status),
		StartTime:     startTime,
		Team1:         req.Team1,
		Team2:         req.Team2,
		VenueID:       strings.TrimSpace(req.VenueID),
		SeriesID:      strings.TrimSpace(req.SeriesID),
		Winner:        req.Winner,
		VictoryMargin: req.VictoryMargin,
		VictoryType:   match.VictoryType(req.VictoryType),
		TossWinner:    req.TossWinner,
		TossDecision:  req.TossDecision,
	}, nil
}

func matchToDTO(v match.Match) matchDTO {
	dto := matchDTO{
		ID:            v.ID,
		Description:   v.Description,
		Format:        string(v.Format),
		Status:        string(v.Status),
		Team1:         v.Team1,
		Team2:         v.Team2,
		VenueID:       v.VenueID,
		SeriesID:      v.SeriesID,
		Winner:        v.Winner,
		VictoryMargin: v.VictoryMargin,
		VictoryType:   string(v.VictoryType),
		TossWinner:    v.TossWinner,
		TossDecision:  v.TossDecision,
	}
	if !v.StartTime.IsZero() {
		dto.StartTime = v.StartTime.UTC().Format(time.RFC3339)
	}
	return dto
}

func scorecardToDTO(card scorecard.Scorecard) scorecardDTO {
	batting := make([]battingInningsDTO, 0, len(card.Batting))
	for _, b := range card.Batting {
		batting = append(batting, battingInningsDTO{
			InningsNo:  b.InningsNo,
			PlayerID:   b.PlayerID,
			Team:       b.Team,
			Position:   b.Position,
			Runs:       b.Runs,
			Balls:      b.Balls,
			Fours:      b.Fours,
			Sixes:      b.Sixes,
			StrikeRate: b.StrikeRate,
		})
	}

	bowling := make([]bowlingSpellDTO, 0, len(card.Bowling))
	for _, b := range card.Bowling {
		bowling = append(bowling, bowlingSpellDTO{
			InningsNo:    b.InningsNo,
			PlayerID:     b.PlayerID,
			Team:         b.Team,
			Overs:        b.Overs,
			Balls:        b.Balls,
			Maidens:      b.Maidens,
			RunsConceded: b.RunsConceded,
			Wickets:      b.Wickets,
			Economy:      b.Economy,
		})
	}

	partnerships := make([]partnershipDTO, 0, len(card.Partnerships))
	for _, p := range card.Partnerships {
		partnerships = append(partnerships, partnershipDTO{
			InningsNo: p.InningsNo,
			Batter1ID: p.Batter1ID,
			Batter2ID: p.Batter2ID,
			Runs:      p.Runs,
		})
	}

	return scorecardDTO{
		MatchID:      card.MatchID,
		Batting:      batting,
		Bowling:      bowling,
		Partnerships: partnerships,
	}
}
