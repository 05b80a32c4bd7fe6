package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := NewWithDetails(http.StatusBadRequest, "INVALID_PARAMETER", "bad team", "team")
	assert.Equal(t, "bad team", err.Error())

	var target *APIError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, http.StatusBadRequest, target.StatusCode)
	assert.Equal(t, "team", target.Details)
}

func TestNewValidationErrors(t *testing.T) {
	err := NewValidationErrors([]ValidationError{
		{Field: "teams", Message: "must have at most 200 items"},
	})

	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode)
	details, ok := err.Details.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, details.Errors, 1)
	assert.Equal(t, "teams", details.Errors[0].Field)

	single := ErrValidation("positions", "required")
	assert.Equal(t, http.StatusBadRequest, single.StatusCode)
}

func TestViewNotFoundError(t *testing.T) {
	err := ViewNotFoundError("bogus", []string{"overview"})
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "VIEW_NOT_FOUND", err.ErrorCode)
	assert.Contains(t, err.Message, `"bogus"`)
}

func TestAppError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewStorageError("failed to open input table", cause).WithContext("path", "x.csv")

	assert.Equal(t, "[STORAGE] failed to open input table: no such file", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "x.csv", err.Context["path"])

	assert.True(t, IsType(fmt.Errorf("load: %w", err), ErrTypeStorage))
	assert.False(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(cause, ErrTypeStorage))

	assert.Equal(t, "[NOT_FOUND] view not found", NewNotFoundError("view").Error())
	assert.Equal(t, ErrTypeConfig, NewConfigError("bad", nil).Type)
	assert.Equal(t, ErrTypeValidation, NewAppValidationError("bad").Type)
	assert.Equal(t, ErrTypeParsing, NewParsingError("bad", nil).Type)
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	problem := NewProblemDetails(http.StatusNotFound, TypeNotFound, "Not Found", "", "/api/x").
		WithExtension("trace_id", "abc").
		WithExtension("status", 999)

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, TypeNotFound, got["type"])
	assert.Equal(t, "Not Found", got["title"])
	assert.Equal(t, float64(404), got["status"], "standard members win over extensions")
	assert.Equal(t, "/api/x", got["instance"])
	assert.Equal(t, "abc", got["trace_id"])
	_, hasDetail := got["detail"]
	assert.False(t, hasDetail, "empty detail is omitted")
}
