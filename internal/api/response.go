// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/models"
)

// Error codes carried in the APIError.Code field.
const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeRateLimit   = "RATE_LIMIT_EXCEEDED"
	ErrCodeUpstream    = "UPSTREAM_ERROR"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
)

// ResponseWriter writes the standard response envelope. One instance
// is created per request so QueryTimeMS reflects handler time.
type ResponseWriter struct {
	w         http.ResponseWriter
	r         *http.Request
	startTime time.Time
}

// NewResponseWriter creates a response writer for the given request.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{
		w:         w,
		r:         r,
		startTime: time.Now(),
	}
}

// Success writes a 200 response with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.writeJSON(http.StatusOK, models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: rw.metadata(false),
	})
}

// SuccessCached writes a 200 response for data served from a local
// cache. QueryTimeMS is reported as 0 since no upstream fetch ran.
func (rw *ResponseWriter) SuccessCached(data interface{}) {
	meta := rw.metadata(true)
	meta.QueryTimeMS = 0
	rw.writeJSON(http.StatusOK, models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// Error writes an error response with the given status code.
func (rw *ResponseWriter) Error(statusCode int, code, message string) {
	rw.ErrorWithDetails(statusCode, code, message, nil)
}

// ErrorWithDetails writes an error response with additional details.
func (rw *ResponseWriter) ErrorWithDetails(statusCode int, code, message string, details map[string]interface{}) {
	rw.writeJSON(statusCode, models.APIResponse{
		Status:   "error",
		Metadata: rw.metadata(false),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// BadRequest writes a 400 validation error.
func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeValidation, message)
}

// NotFound writes a 404 error.
func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

// TooManyRequests writes a 429 error.
func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Error(http.StatusTooManyRequests, ErrCodeRateLimit, message)
}

// InternalError writes a 500 error.
func (rw *ResponseWriter) InternalError(message string) {
	rw.Error(http.StatusInternalServerError, ErrCodeInternal, message)
}

// ServiceUnavailable writes a 503 error.
func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Error(http.StatusServiceUnavailable, ErrCodeUnavailable, message)
}

// UpstreamError writes a 502 error for an external source failure.
// The upstream error is logged with request context but never leaks
// to the client beyond the source name.
func (rw *ResponseWriter) UpstreamError(source string, err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).Str("source", source).Msg("Upstream request failed")
	rw.Error(http.StatusBadGateway, ErrCodeUpstream, "upstream source failed: "+source)
}

func (rw *ResponseWriter) metadata(cached bool) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now().UTC(),
		QueryTimeMS: time.Since(rw.startTime).Milliseconds(),
		Cached:      cached,
	}
}

func (rw *ResponseWriter) writeJSON(statusCode int, body models.APIResponse) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(statusCode)
	if err := json.NewEncoder(rw.w).Encode(body); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}
