// Package services implements the business logic layer of the dashboard.
// It sits between the HTTP handlers (and the CLI) and the pure dataset and
// views packages, adding validation, tracing, metrics and logging.
//
// # Available Services
//
//	- DashboardService: filter options, full dashboard recomputation and single views
//	- HealthService: health, readiness and liveness checks plus version information
//
// # Error Handling
//
// Services return the sentinel errors declared in errors.go, wrapped with
// fmt.Errorf so handlers can match them with errors.Is:
//
//	dash, err := svc.RecomputeAll(ctx, sel)
//	if errors.Is(err, services.ErrInvalidSelection) {
//	    // 400
//	}
//
// The loaded dataset is read-only, so a single service instance is shared by
// every request without locking.
package services
