package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/cricverse/cricstats/internal/platform/logging"
	"github.com/cricverse/cricstats/internal/usecase"
)

// storagePinger reports whether the database backend is reachable.
type storagePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	analyticsService *usecase.AnalyticsService
	ingestionService *usecase.IngestionService
	pinger           storagePinger
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	analyticsService *usecase.AnalyticsService,
	ingestionService *usecase.IngestionService,
	pinger storagePinger,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		playerService:    playerService,
		matchService:     matchService,
		analyticsService: analyticsService,
		ingestionService: ingestionService,
		pinger:           pinger,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "healthz database ping failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: database unreachable", usecase.ErrDependencyUnavailable))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeRequest(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// parsePagination reads limit/offset query parameters, leaving zero
// values for the service layer to default.
func parsePagination(r *http.Request) (int, int, error) {
	limit, err := parseQueryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}
	offset, err := parseQueryInt(r, "offset")
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func parseQueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
