// Package views computes the dashboard's derived tables from a filtered slice
// of player seasons. Every function is pure: it never modifies its input and
// returns an empty, non-nil slice for empty input.
package views
