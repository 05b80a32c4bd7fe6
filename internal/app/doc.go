// Package app wires the dashboard together and owns its lifecycle.
//
// # Initialization Flow
//
//	1. Configuration is loaded by the caller (config.Load)
//	2. OpenTelemetry providers and business metrics are created
//	3. The salary table is loaded and cleaned once; failure aborts startup
//	4. Services receive the read-only dataset by injection
//	5. The chi router is assembled: middleware, /api routes, /metrics
//
// # Usage
//
//	cfg, _ := config.Load()
//	application, err := app.NewApplication(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
//
// # Graceful Shutdown
//
// Run and Serve stop on context cancellation or SIGINT/SIGTERM. The HTTP
// server and the runtime metrics collector share an errgroup; the first
// error cancels the rest, in-flight requests are drained within the
// configured shutdown timeout and telemetry is flushed.
//
// The app does not call os.Exit; the cobra command decides the exit code.
package app
