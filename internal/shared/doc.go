// Package shared holds helpers used by more than one package.
//
// The testutil subpackage provides a capturing slog handler for asserting on
// log output and builders for salary-table fixtures written to temporary CSV
// files. Nothing here carries dashboard logic.
package shared
