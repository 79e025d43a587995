// Package apierr defines the error taxonomy shared by the engines and both
// external surfaces. Engines return *Error values; the HTTP and WebSocket
// adapters map them onto wire envelopes without inspecting engine internals.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable wire identifier of an error class.
type Kind string

const (
	KindMissingParameter    Kind = "missing_parameter"
	KindInvalidParameter    Kind = "invalid_parameter"
	KindLargeParameter      Kind = "large_parameter"
	KindAuthFailed          Kind = "auth_failed"
	KindAddressNotFound     Kind = "address_not_found"
	KindNameNotFound        Kind = "name_not_found"
	KindBlockNotFound       Kind = "block_not_found"
	KindTransactionNotFound Kind = "transaction_not_found"
	KindInsufficientFunds   Kind = "insufficient_funds"
	KindNotNameOwner        Kind = "not_name_owner"
	KindSolutionIncorrect   Kind = "solution_incorrect"
	KindUnselectedValidator Kind = "unselected_validator"
	KindInvalidToken        Kind = "invalid_token"
	KindNameTaken           Kind = "name_taken"
	KindSolutionDuplicate   Kind = "solution_duplicate"
	KindMiningDisabled      Kind = "mining_disabled"
	KindRateLimitHit        Kind = "rate_limit_hit"
	KindServerError         Kind = "server_error"
)

var statusByKind = map[Kind]int{
	KindMissingParameter:    http.StatusBadRequest,
	KindInvalidParameter:    http.StatusBadRequest,
	KindLargeParameter:      http.StatusBadRequest,
	KindAuthFailed:          http.StatusUnauthorized,
	KindAddressNotFound:     http.StatusNotFound,
	KindNameNotFound:        http.StatusNotFound,
	KindBlockNotFound:       http.StatusNotFound,
	KindTransactionNotFound: http.StatusNotFound,
	KindInsufficientFunds:   http.StatusForbidden,
	KindNotNameOwner:        http.StatusForbidden,
	KindSolutionIncorrect:   http.StatusForbidden,
	KindUnselectedValidator: http.StatusForbidden,
	KindInvalidToken:        http.StatusForbidden,
	KindNameTaken:           http.StatusConflict,
	KindSolutionDuplicate:   http.StatusConflict,
	KindMiningDisabled:      http.StatusLocked,
	KindRateLimitHit:        http.StatusTooManyRequests,
	KindServerError:         http.StatusInternalServerError,
}

// Error is a typed operation failure. Parameter names the offending request
// field for the parameter kinds and is empty otherwise.
type Error struct {
	Kind      Kind
	Parameter string
	cause     error
}

func (e *Error) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Parameter)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status associated with the error kind.
func (e *Error) Status() int {
	if s, ok := statusByKind[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func newError(kind Kind) *Error { return &Error{Kind: kind} }

func MissingParameter(param string) *Error {
	return &Error{Kind: KindMissingParameter, Parameter: param}
}

func InvalidParameter(param string) *Error {
	return &Error{Kind: KindInvalidParameter, Parameter: param}
}

func LargeParameter(param string) *Error {
	return &Error{Kind: KindLargeParameter, Parameter: param}
}

func AuthFailed() *Error          { return newError(KindAuthFailed) }
func AddressNotFound() *Error     { return newError(KindAddressNotFound) }
func NameNotFound() *Error        { return newError(KindNameNotFound) }
func BlockNotFound() *Error       { return newError(KindBlockNotFound) }
func TransactionNotFound() *Error { return newError(KindTransactionNotFound) }
func InsufficientFunds() *Error   { return newError(KindInsufficientFunds) }
func NotNameOwner() *Error        { return newError(KindNotNameOwner) }
func SolutionIncorrect() *Error   { return newError(KindSolutionIncorrect) }
func UnselectedValidator() *Error { return newError(KindUnselectedValidator) }
func InvalidToken() *Error        { return newError(KindInvalidToken) }
func NameTaken() *Error           { return newError(KindNameTaken) }
func SolutionDuplicate() *Error   { return newError(KindSolutionDuplicate) }
func MiningDisabled() *Error      { return newError(KindMiningDisabled) }
func RateLimitHit() *Error        { return newError(KindRateLimitHit) }

// ServerError wraps an unexpected failure. The cause is kept for logging but
// never serialized to clients.
func ServerError(cause error) *Error {
	return &Error{Kind: KindServerError, cause: cause}
}

// From coerces any error into an *Error, wrapping unknown failures as
// server_error.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ServerError(err)
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
