package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPlaceNotFound is returned when a place is not found.
	ErrPlaceNotFound = errors.New("could not find the provided place")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("could not find the provided user")
	// ErrUnauthorizedCreator is returned when a place creator does not exist.
	ErrUnauthorizedCreator = errors.New("creating denied, unauthorized creator")
	// ErrEmailExists is returned when signing up with an already registered email.
	ErrEmailExists = errors.New("could not create user, email already exists")
	// ErrInvalidCredentials is returned for any login failure. Unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("could not identify user, email or password is wrong")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrGeocodeFailed is returned when an address cannot be resolved to coordinates.
	ErrGeocodeFailed = errors.New("could not resolve coordinates for the provided address")
	// ErrTransactionFailed is returned when the atomic place/owner write is rolled back.
	ErrTransactionFailed = errors.New("saving changes failed, please try again")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy collapses to a generic 500 so driver detail never reaches clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrPlaceNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPlaceNotFound.Error(), "PLACE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUnauthorizedCreator):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorizedCreator.Error(), "UNAUTHORIZED_CREATOR")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrEmailExists.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidRefreshToken.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrGeocodeFailed):
		return NewHTTPError(http.StatusBadGateway, ErrGeocodeFailed.Error(), "GEOCODE_FAILED")
	case errors.Is(err, ErrTransactionFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrTransactionFailed.Error(), "TRANSACTION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "an unknown error occurred", "INTERNAL_ERROR")
	}
}
