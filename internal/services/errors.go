package services

import "errors"

// Service errors
var (
	// Dataset errors
	ErrDatasetUnavailable = errors.New("dataset not loaded")

	// Selection errors
	ErrInvalidSelection = errors.New("invalid filter selection")

	// View errors
	ErrViewNotFound = errors.New("view not found")
)
