package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/shreyasbhat0/todo-service/internal/domain"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 Problem Details document. Every error the API
// emits, whether it originates in a handler or in middleware, takes this
// shape.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail pinpoints one invalid field within a validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse builds the problem document for err. The status code is
// derived from the domain sentinel wrapped in err; anything unrecognized
// reports as a 500.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse renders err onto w as problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding error response",
			slog.Any("error", encErr),
		)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fieldDetails flattens a validation field map into details sorted by
// location, keeping the wire order stable across requests.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})

	return details
}
