package handlers

import (
	"net/http"
	"testing"

	"roadbuddy/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpHandlerCreatesAccount(t *testing.T) {
	hb, m := newMockedBundle()
	var gotName, gotEmail string
	m.users.signUpFn = func(name, email, password string) error {
		gotName, gotEmail = name, email
		return nil
	}

	rec := performRequest(t, hb.SignUpHandler, http.MethodPost, "/api/signup", "/api/signup", map[string]any{
		"name":     " Sam ",
		"email":    "sam@example.com",
		"password": "secret",
	}, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Signup successful", decodeBody(t, rec)["message"])
	assert.Equal(t, "Sam", gotName)
	assert.Equal(t, "sam@example.com", gotEmail)
}

func TestSignUpHandlerListsMissingFields(t *testing.T) {
	hb, _ := newMockedBundle()

	rec := performRequest(t, hb.SignUpHandler, http.MethodPost, "/api/signup", "/api/signup", map[string]any{
		"name": "Sam",
	}, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "email")
	assert.Contains(t, body["error"], "password")
}

func TestSignUpHandlerDuplicateEmail(t *testing.T) {
	hb, m := newMockedBundle()
	m.users.signUpFn = func(_, _, _ string) error {
		return apperror.Conflict("The email entered already exists.")
	}

	rec := performRequest(t, hb.SignUpHandler, http.MethodPost, "/api/signup", "/api/signup", map[string]any{
		"name":     "Sam",
		"email":    "sam@example.com",
		"password": "secret",
	}, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The email entered already exists.", decodeBody(t, rec)["error"])
}

func TestUserIDHandler(t *testing.T) {
	hb, _ := newMockedBundle()

	rec := performRequest(t, hb.UserIDHandler, http.MethodGet, "/api/user-id", "/api/user-id", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, decodeBody(t, rec)["userId"])
}

func TestHomeHandlerGreetsByName(t *testing.T) {
	hb, _ := newMockedBundle()

	rec := performRequest(t, hb.HomeHandler, http.MethodGet, "/api/home", "/api/home", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome Alex!", decodeBody(t, rec)["message"])
}
