package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError carries a non-2xx response from the identity-management API back
// to the caller unchanged: the status code and raw body are preserved
// verbatim, with the commonly used remote error fields decoded for
// convenience when the body is JSON.
type APIError struct {
	// StatusCode is the HTTP status code returned by the remote service
	StatusCode int `json:"statusCode"`
	// Code is the remote error code, when the response body provides one
	Code string `json:"error"`
	// Message is the remote error description, when the body provides one
	Message string `json:"message"`
	// RawBody is the unmodified response body
	RawBody []byte `json:"-"`
}

var _ error = &APIError{}

type remoteErrorBody struct {
	Error            string `json:"error"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

func NewAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{
		StatusCode: statusCode,
		RawBody:    body,
	}

	var remote remoteErrorBody
	if err := json.Unmarshal(body, &remote); err == nil {
		apiError.Code = firstNonEmpty(remote.ErrorCode, remote.Error)
		apiError.Message = firstNonEmpty(remote.Message, remote.ErrorDescription, remote.Error)
	}

	if apiError.Message == "" {
		apiError.Message = http.StatusText(statusCode)
	}

	return apiError
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("identity-management API returned status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("identity-management API returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) IsClientErrorClass() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

func (e *APIError) IsServerErrorClass() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
