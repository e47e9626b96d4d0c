package errors

import (
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	ERROR_CODE_PREFIX = "IDM-CLIENT"

	// Validation occurs when client configuration or arguments fail validation
	ErrorValidation       ServiceErrorCode = 1
	ErrorValidationReason string           = "General validation failure"

	// General occurs when an error fails to match any other error code
	ErrorGeneral       ServiceErrorCode = 2
	ErrorGeneralReason string           = "Unspecified error"

	// BadRequest occurs when the remote service rejects the request payload
	ErrorBadRequest       ServiceErrorCode = 3
	ErrorBadRequestReason string           = "Bad request"

	// Unauthenticated occurs when the provided credentials cannot be validated
	ErrorUnauthenticated       ServiceErrorCode = 4
	ErrorUnauthenticatedReason string           = "Account authentication could not be verified"

	// Forbidden occurs when the account is not allowed to access the resource
	ErrorForbidden       ServiceErrorCode = 5
	ErrorForbiddenReason string           = "Forbidden to perform this action"

	// NotFound occurs when the requested resource does not exist remotely
	ErrorNotFound       ServiceErrorCode = 6
	ErrorNotFoundReason string           = "Resource not found"

	// Conflict occurs when a remote uniqueness constraint is violated
	ErrorConflict       ServiceErrorCode = 7
	ErrorConflictReason string           = "An entity with the specified unique values already exists"

	// TooManyRequests occurs when the remote service rate-limits the client
	ErrorTooManyRequests       ServiceErrorCode = 8
	ErrorTooManyRequestsReason string           = "Rate limit exceeded"

	// FailedToGetToken occurs when the token provider cannot supply a token
	ErrorFailedToGetToken       ServiceErrorCode = 9
	ErrorFailedToGetTokenReason string           = "Failed to obtain an access token"
)

type ServiceErrorCode int

type ServiceErrors []ServiceError

func Find(code ServiceErrorCode) (bool, *ServiceError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

func Errors() ServiceErrors {
	return ServiceErrors{
		ServiceError{ErrorValidation, ErrorValidationReason, http.StatusBadRequest, nil},
		ServiceError{ErrorGeneral, ErrorGeneralReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorBadRequest, ErrorBadRequestReason, http.StatusBadRequest, nil},
		ServiceError{ErrorUnauthenticated, ErrorUnauthenticatedReason, http.StatusUnauthorized, nil},
		ServiceError{ErrorForbidden, ErrorForbiddenReason, http.StatusForbidden, nil},
		ServiceError{ErrorNotFound, ErrorNotFoundReason, http.StatusNotFound, nil},
		ServiceError{ErrorConflict, ErrorConflictReason, http.StatusConflict, nil},
		ServiceError{ErrorTooManyRequests, ErrorTooManyRequestsReason, http.StatusTooManyRequests, nil},
		ServiceError{ErrorFailedToGetToken, ErrorFailedToGetTokenReason, http.StatusUnauthorized, nil},
	}
}

type ServiceError struct {
	// Code is the numeric and distinct ID for the error
	Code ServiceErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// HttpCode is the HTTP status code associated with the error
	HttpCode int
	// The original error that is causing the ServiceError, can be used for inspection
	cause error
}

// Reason can be a string with format verbs, which will be replaced by the specified values
func New(code ServiceErrorCode, reason string, values ...interface{}) *ServiceError {
	return NewWithCause(code, nil, reason, values...)
}

func NewWithCause(code ServiceErrorCode, cause error, reason string, values ...interface{}) *ServiceError {
	// If the code isn't defined, use the general error code
	var err *ServiceError
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &ServiceError{ErrorGeneral, ErrorGeneralReason, http.StatusInternalServerError, nil}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}

	if cause != nil {
		err.cause = errors.WithStack(cause)
	}

	return err
}

func NewErrorFromHTTPStatusCode(httpCode int, reason string, values ...interface{}) *ServiceError {
	if httpCode >= http.StatusBadRequest && httpCode < http.StatusInternalServerError {
		switch httpCode {
		case http.StatusBadRequest:
			return BadRequest(reason, values...)
		case http.StatusUnauthorized:
			return Unauthenticated(reason, values...)
		case http.StatusForbidden:
			return Forbidden(reason, values...)
		case http.StatusNotFound:
			return NotFound(reason, values...)
		case http.StatusConflict:
			return Conflict(reason, values...)
		case http.StatusTooManyRequests:
			return TooManyRequests(reason, values...)
		default:
			return BadRequest(reason, values...)
		}
	}

	return GeneralError(reason, values...)
}

// ToServiceError returns the error as a ServiceError, converting it when it is
// not one already.
func ToServiceError(err error) *ServiceError {
	switch convertedErr := err.(type) {
	case *ServiceError:
		return convertedErr
	default:
		return GeneralError(convertedErr.Error())
	}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason)
}

// Unwrap returns the original error that caused the ServiceError, allowing
// errors.Is/errors.As to traverse into it.
func (e *ServiceError) Unwrap() error {
	return e.cause
}

// StackTrace returns the stack trace of the original cause when it carries
// one, nil otherwise.
func (e *ServiceError) StackTrace() errors.StackTrace {
	if e.cause == nil {
		return nil
	}

	err, ok := e.cause.(stackTracer)
	if !ok {
		return nil
	}

	return err.StackTrace()
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func (e *ServiceError) IsValidation() bool {
	return e.Code == ErrorValidation
}

func (e *ServiceError) Is404() bool {
	return e.Code == ErrorNotFound
}

func (e *ServiceError) IsConflict() bool {
	return e.Code == ErrorConflict
}

func (e *ServiceError) IsForbidden() bool {
	return e.Code == ErrorForbidden
}

func (e *ServiceError) IsTooManyRequests() bool {
	return e.Code == ErrorTooManyRequests
}

func (e *ServiceError) IsFailedToGetToken() bool {
	return e.Code == ErrorFailedToGetToken
}

func (e *ServiceError) IsClientErrorClass() bool {
	return e.HttpCode >= http.StatusBadRequest && e.HttpCode < http.StatusInternalServerError
}

func (e *ServiceError) IsServerErrorClass() bool {
	return e.HttpCode >= http.StatusInternalServerError
}

func CodeStr(code ServiceErrorCode) string {
	return fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, code)
}

func Validation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

func GeneralError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGeneral, reason, values...)
}

func BadRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBadRequest, reason, values...)
}

func Unauthenticated(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthenticated, reason, values...)
}

func Forbidden(reason string, values ...interface{}) *ServiceError {
	return New(ErrorForbidden, reason, values...)
}

func NotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotFound, reason, values...)
}

func Conflict(reason string, values ...interface{}) *ServiceError {
	return New(ErrorConflict, reason, values...)
}

func TooManyRequests(reason string, values ...interface{}) *ServiceError {
	return New(ErrorTooManyRequests, reason, values...)
}

func FailedToGetToken(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToGetToken, reason, values...)
}
