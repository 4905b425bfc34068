package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"place not found", ErrPlaceNotFound, http.StatusNotFound, "PLACE_NOT_FOUND"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"unauthorized creator", ErrUnauthorizedCreator, http.StatusUnauthorized, "UNAUTHORIZED_CREATOR"},
		{"email exists", ErrEmailExists, http.StatusUnprocessableEntity, "EMAIL_EXISTS"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"geocode failure", ErrGeocodeFailed, http.StatusBadGateway, "GEOCODE_FAILED"},
		{"transaction failure", ErrTransactionFailed, http.StatusInternalServerError, "TRANSACTION_FAILED"},
		{"unknown error", fmt.Errorf("driver: bad connection"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

// Wrapped sentinels must keep their mapping, and the wrapping detail must not
// leak into the response message.
func TestMapErrorToHTTP_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: Error 1213: Deadlock found", ErrTransactionFailed)

	httpErr := MapErrorToHTTP(wrapped)

	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, ErrTransactionFailed.Error(), httpErr.Message)
	assert.NotContains(t, httpErr.Message, "Deadlock")
}
