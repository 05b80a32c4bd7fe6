package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "github.com/edsonpatricio/aula-unifor-22112024/internal/errors"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/services"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

const (
	teamParam     = "team"
	positionParam = "position"

	// maxSelectionBody bounds POST /api/dashboard bodies
	maxSelectionBody = 64 << 10
)

// DashboardHandler handles dashboard HTTP requests with RFC 7807 errors
type DashboardHandler struct {
	service      DashboardServiceInterface
	validator    StructValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardServiceInterface, validator StructValidator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard routes
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetDashboard)
	r.Post("/", h.PostDashboard)
	r.Get("/filters", h.GetFilters)
	r.Get("/views/{view}", h.GetView)

	return r
}

// GetFilters handles GET /api/dashboard/filters
func (h *DashboardHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.FilterOptions(r.Context()))
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sel := SelectionFromQuery(r.URL.Query())
	h.renderDashboard(w, r, sel)
}

// PostDashboard handles POST /api/dashboard with a JSON selection body
func (h *DashboardHandler) PostDashboard(w http.ResponseWriter, r *http.Request) {
	var sel domain.FilterSelection

	r.Body = http.MaxBytesReader(w, r.Body, maxSelectionBody)
	if err := render.DecodeJSON(r.Body, &sel); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusBadRequest,
			"INVALID_JSON",
			"Request body contains invalid JSON",
		))
		return
	}

	h.renderDashboard(w, r, sel)
}

func (h *DashboardHandler) renderDashboard(w http.ResponseWriter, r *http.Request, sel domain.FilterSelection) {
	if err := h.validator.ValidateStruct(sel); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	dash, err := h.service.RecomputeAll(r.Context(), sel)
	if err != nil {
		h.handleServiceError(w, r, err, "")
		return
	}

	h.logger.DebugContext(r.Context(), "dashboard served",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("rows", dash.Overview.Rows))

	render.JSON(w, r, dash)
}

// GetView handles GET /api/dashboard/views/{view}
func (h *DashboardHandler) GetView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")
	sel := SelectionFromQuery(r.URL.Query())

	if err := h.validator.ValidateStruct(sel); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, err := h.service.View(r.Context(), name, sel)
	if err != nil {
		h.handleServiceError(w, r, err, name)
		return
	}

	render.JSON(w, r, result)
}

// handleServiceError maps service errors to API errors
func (h *DashboardHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, view string) {
	switch {
	case errors.Is(err, services.ErrViewNotFound):
		h.errorHandler.HandleError(w, r, apierrors.ViewNotFoundError(view, h.service.ViewNames()))
	case errors.Is(err, services.ErrInvalidSelection):
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest,
			"VALIDATION_FAILED",
			"Request validation failed",
			err.Error(),
		))
	case errors.Is(err, services.ErrDatasetUnavailable):
		h.errorHandler.HandleError(w, r, apierrors.DatasetUnavailableError(err))
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}

// SelectionFromQuery builds a selection from repeated or comma-separated
// team and position parameters. An absent parameter selects everything;
// a present but empty one selects nothing.
func SelectionFromQuery(q url.Values) domain.FilterSelection {
	return domain.FilterSelection{
		Teams:     listParam(q, teamParam),
		Positions: listParam(q, positionParam),
	}
}

func listParam(q url.Values, key string) []string {
	raw, ok := q[key]
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
