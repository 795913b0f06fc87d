package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryKindAndStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    *Error
		kind   string
		status int
	}{
		{"validation", Validation("bad input"), KindValidation, http.StatusBadRequest},
		{"auth", Auth("no token"), KindAuth, http.StatusUnauthorized},
		{"not found", NotFound("gone"), KindNotFound, http.StatusNotFound},
		{"forbidden", Forbidden("nope"), KindForbidden, http.StatusForbidden},
		{"conflict", Conflict("duplicate"), KindConflict, http.StatusBadRequest},
		{"store", Store("db down", errors.New("dial tcp")), KindStore, http.StatusInternalServerError},
		{"payment", Payment("provider failed", errors.New("card declined")), KindPayment, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.status, tc.err.Status)
		})
	}
}

func TestWithStatusOverridesDefault(t *testing.T) {
	err := Forbidden("owner only").WithStatus(http.StatusBadRequest)
	assert.Equal(t, KindForbidden, err.Kind)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestErrorAndDetails(t *testing.T) {
	cause := errors.New("connection reset")
	err := Store("Failed to fetch ride", cause)

	assert.Equal(t, "Failed to fetch ride: connection reset", err.Error())
	assert.Equal(t, "connection reset", err.Details())
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := NotFound("Ride not found")
	assert.Equal(t, "Ride not found", bare.Error())
	assert.Empty(t, bare.Details())
}

func TestFromPassesThroughAppErrors(t *testing.T) {
	original := Conflict("Ride is full")
	assert.Same(t, original, From(original, "fallback"))
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("boom")
	err := From(cause, "An unexpected error occurred")

	require.NotNil(t, err)
	assert.Equal(t, KindStore, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "An unexpected error occurred", err.Message)
	assert.Equal(t, cause, errors.Unwrap(err))
}
