package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/dataset"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/infrastructure"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts"
)

// HealthService provides health check functionality
type HealthService struct {
	version    string
	instanceID string
	dataset    *dataset.Dataset
	startTime  time.Time
	logger     *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                       `json:"status"`
	Timestamp time.Time                    `json:"timestamp"`
	Version   string                       `json:"version"`
	Runtime   *infrastructure.RuntimeStats `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth     `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

// NewHealthService creates a health service. ds may be nil when loading failed;
// readiness then reports not_ready.
func NewHealthService(version string, ds *dataset.Dataset, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "health_service")

	hs := &HealthService{
		version:    version,
		instanceID: uuid.NewString(),
		dataset:    ds,
		startTime:  time.Now(),
		logger:     logger,
	}

	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("instance_id", hs.instanceID))

	return hs
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

// ReadinessCheck reports whether the dataset is loaded and non-empty
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services: map[string]ServiceHealth{
			"dataset": hs.checkDatasetHealth(),
		},
	}

	for _, sh := range status.Services {
		if sh.Status != "ready" {
			status.Status = "not_ready"
			break
		}
	}

	return status
}

// LivenessCheck returns liveness status with a runtime snapshot
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	stats := infrastructure.ReadRuntimeStats(hs.startTime)
	return HealthStatus{
		Status:    "alive",
		Timestamp: stats.Timestamp,
		Version:   hs.version,
		Runtime:   &stats,
	}
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	info := contracts.GetVersionInfo()
	return map[string]interface{}{
		"version":      hs.version,
		"build_time":   info.BuildTime,
		"git_commit":   info.GitCommit,
		"go_version":   runtime.Version(),
		"os":           runtime.GOOS,
		"arch":         runtime.GOARCH,
		"api_version":  info.APIVersion,
		"data_format":  info.DataFormat,
		"instance_id":  hs.instanceID,
		"uptime":       time.Since(hs.startTime).Seconds(),
		"start_time":   hs.startTime.Format(time.RFC3339),
		"current_time": time.Now().Format(time.RFC3339),
	}
}

// IsReady reports whether requests can be served
func (hs *HealthService) IsReady() bool {
	return hs.checkDatasetHealth().Status == "ready"
}

func (hs *HealthService) checkDatasetHealth() ServiceHealth {
	if hs.dataset == nil {
		return ServiceHealth{
			Status:  "not_ready",
			Message: "dataset not loaded",
		}
	}

	if hs.dataset.Len() == 0 {
		return ServiceHealth{
			Status:  "not_ready",
			Message: "dataset has no rows after cleaning",
		}
	}

	report := hs.dataset.Report()
	return ServiceHealth{
		Status:  "ready",
		Message: fmt.Sprintf("%d rows loaded from %s, %d dropped", report.RowsKept, report.Source, report.TotalDropped()),
		Uptime:  time.Since(hs.startTime).String(),
	}
}
