package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
)

type Handler struct {
	authService   *usecase.AuthService
	reportService *usecase.BonusReportService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	reportService *usecase.BonusReportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:   authService,
		reportService: reportService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AuthStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, sessionStatusToDTO(h.authService.Status(ctx)))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	status, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionStatusToDTO(status))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, sessionStatusToDTO(h.authService.Logout(ctx)))
}

func (h *Handler) ListGameModes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameModes")
	defer span.End()

	modes := gamemode.All()
	items := make([]gameModeDTO, 0, len(modes))
	for _, mode := range modes {
		items = append(items, gameModeDTO{ID: int64(mode.ID), Name: mode.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamBonuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamBonuses")
	defer span.End()

	userID, err := parsePathID(r, "userID", "user id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	modeID, err := parseGameMode(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.GetTeamBonuses(ctx, modeID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team bonuses failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) GetMainLeagueBonuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMainLeagueBonuses")
	defer span.End()

	modeID, err := parseGameMode(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.GetLeagueBonuses(ctx, modeID, 0)
	if err != nil {
		h.logger.WarnContext(ctx, "get main league bonuses failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) GetLeagueBonuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueBonuses")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID", "league id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	modeID, err := parseGameMode(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.GetLeagueBonuses(ctx, modeID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league bonuses failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseGameMode reads the optional game_mode query parameter. Zero selects
// the configured default mode; catalog membership is checked by the service.
func parseGameMode(r *http.Request) (gamemode.ID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("game_mode"))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: game_mode must be an integer", usecase.ErrInvalidInput)
	}

	return gamemode.ID(value), nil
}

func parsePathID(r *http.Request, pathName, displayName string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(pathName))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, displayName)
	}

	return value, nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionStatusDTO struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
}

type gameModeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func sessionStatusToDTO(status usecase.SessionStatus) sessionStatusDTO {
	return sessionStatusDTO{
		Authenticated: status.Authenticated,
		Email:         status.Email,
	}
}
