package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/christianwondeson/sports-hub/internal/platform/logging"
	"github.com/christianwondeson/sports-hub/internal/usecase"
)

type Handler struct {
	fixtureStore  *usecase.FixtureStore
	detailService *usecase.MatchDetailService
	leagueService *usecase.LeagueService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	fixtureStore *usecase.FixtureStore,
	detailService *usecase.MatchDetailService,
	leagueService *usecase.LeagueService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureStore:  fixtureStore,
		detailService: detailService,
		leagueService: leagueService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type listMatchesQuery struct {
	Filter string `validate:"omitempty,oneof=all live favorites"`
}

// ListMatches serves the current snapshot grouped by league. A filter query
// parameter both selects the view and becomes the store's active filter, so
// the polling cycle kind follows what the consumer is looking at.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := listMatchesQuery{Filter: strings.TrimSpace(r.URL.Query().Get("filter"))}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: filter must be one of all, live, favorites", usecase.ErrInvalidInput))
		return
	}

	if query.Filter != "" {
		if err := h.fixtureStore.SetFilter(query.Filter); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	view := h.fixtureStore.View(query.Filter)
	writeSuccess(ctx, w, http.StatusOK, matchListDTO{
		Filter:  h.fixtureStore.ActiveFilter(),
		Leagues: leagueMatchesToDTOs(view),
	})
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.detailService.Load(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "load match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	league, err := h.leagueService.GetByID(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "league lookup failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(league))
}

// RunRefreshAllJob refreshes every supported league once, outside the regular
// polling cycle. Guarded by the internal job token middleware.
func (h *Handler) RunRefreshAllJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshAllJob")
	defer span.End()

	if h.fixtureStore == nil {
		writeError(ctx, w, fmt.Errorf("%w: fixture store is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.fixtureStore.RefreshAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh all job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
