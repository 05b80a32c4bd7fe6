// Package config loads the dashboard configuration.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later ones winning:
//
//	1. Default values (Default)
//	2. A YAML file: $NBA_CONFIG_FILE, ./config.yaml or ./configs/config.yaml
//	3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern NBA_<SECTION>_<FIELD>:
//
//	NBA_SERVER_PORT=8080
//	NBA_DATA_INPUT_FILE=data/nba_stats.csv
//	NBA_DATA_DELIMITER=;
//	NBA_LOGGING_LEVEL=debug
//	NBA_SECURITY_ALLOWED_ORIGINS=http://localhost:3000,http://localhost:8501
//	NBA_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// The merged configuration is validated with go-playground/validator struct
// tags; Load fails on the first invalid section.
//
// # Paths
//
// Relative data paths are resolved against the working directory and then
// against the executable directory, see Paths.Resolve.
package config
