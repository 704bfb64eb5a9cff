package models

import (
	"encoding/json"
	"net/http"
)

// Problem represents an RFC7807 error response, used for all API error
// responses with Content-Type: application/problem+json.
type Problem struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI reference identifying the specific occurrence.
	Instance string `json:"instance,omitempty"`

	// TraceID is the request trace identifier for debugging.
	TraceID string `json:"traceId"`
}

// ProblemType constants for standard error types.
const (
	ProblemTypeValidation      = "https://weatherlens.dev/problems/validation-error"
	ProblemTypeUnauthorized    = "https://weatherlens.dev/problems/upstream-unauthorized"
	ProblemTypeNotFound        = "https://weatherlens.dev/problems/not-found"
	ProblemTypeTooManyRequests = "https://weatherlens.dev/problems/too-many-requests"
	ProblemTypeInternal        = "https://weatherlens.dev/problems/internal-error"
	ProblemTypeUnavailable     = "https://weatherlens.dev/problems/upstream-unavailable"
	ProblemTypeUpstreamTimeout = "https://weatherlens.dev/problems/upstream-timeout"
)

// NewProblem creates a new Problem with the given parameters.
func NewProblem(problemType, title string, status int, traceID string) *Problem {
	return &Problem{
		Type:    problemType,
		Title:   title,
		Status:  status,
		TraceID: traceID,
	}
}

// Write writes the Problem as JSON to the ResponseWriter.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Request-Id", p.TraceID)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// NewBadRequest creates a 400 Bad Request problem.
func NewBadRequest(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeValidation, "Validation error", http.StatusBadRequest, traceID)
	p.Detail = detail
	return p
}

// NewUpstreamUnauthorized creates a 401 problem for an upstream
// credential rejection.
func NewUpstreamUnauthorized(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeUnauthorized, "Upstream unauthorized", http.StatusUnauthorized, traceID)
	p.Detail = detail
	return p
}

// NewNotFound creates a 404 Not Found problem.
func NewNotFound(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeNotFound, "Not found", http.StatusNotFound, traceID)
	p.Detail = detail
	return p
}

// NewTooManyRequests creates a 429 Too Many Requests problem.
func NewTooManyRequests(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeTooManyRequests, "Too many requests", http.StatusTooManyRequests, traceID)
	p.Detail = detail
	return p
}

// NewInternalError creates a 500 Internal Server Error problem.
func NewInternalError(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeInternal, "Internal server error", http.StatusInternalServerError, traceID)
	p.Detail = detail
	return p
}

// NewServiceUnavailable creates a 503 Service Unavailable problem.
func NewServiceUnavailable(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeUnavailable, "Service unavailable", http.StatusServiceUnavailable, traceID)
	p.Detail = detail
	return p
}

// NewGatewayTimeout creates a 504 Gateway Timeout problem.
func NewGatewayTimeout(traceID, detail string) *Problem {
	p := NewProblem(ProblemTypeUpstreamTimeout, "Upstream timeout", http.StatusGatewayTimeout, traceID)
	p.Detail = detail
	return p
}
