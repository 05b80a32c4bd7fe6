package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/infrastructure"
)

// MetricsHandler serves the Prometheus exposition and a JSON runtime snapshot
type MetricsHandler struct {
	exposition http.Handler
	startTime  time.Time
}

// NewMetricsHandler creates a new metrics handler. A nil exposition handler
// falls back to the default Prometheus registry.
func NewMetricsHandler(exposition http.Handler, startTime time.Time) *MetricsHandler {
	if exposition == nil {
		exposition = promhttp.Handler()
	}
	return &MetricsHandler{
		exposition: exposition,
		startTime:  startTime,
	}
}

// Routes sets up the metrics routes
func (h *MetricsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/", h.exposition)
	r.Get("/runtime", h.GetRuntime)
	return r
}

// GetRuntime returns goroutine, heap and uptime figures
func (h *MetricsHandler) GetRuntime(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, infrastructure.ReadRuntimeStats(h.startTime))
}
