package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/usecase"
	"github.com/riskdesk/riskdesk/pkg/utils/errutil"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		errutil.Handle(ctx, err, "failed to encode JSON response")
	}
}

// decodeJSON decodes a request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}

// handleError maps use case errors to HTTP status codes and writes a JSON
// error response.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, usecase.ErrProjectNotFound),
		errors.Is(err, usecase.ErrRiskNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrSessionExpired):
		status = http.StatusUnauthorized
	}

	errutil.Handle(ctx, err, "request failed")
	writeJSON(ctx, w, status, errorResponse{Error: err.Error()})
}

// handleBadRequest writes a 400 response for malformed or invalid input
func handleBadRequest(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.Handle(ctx, err, "bad request")
	writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
