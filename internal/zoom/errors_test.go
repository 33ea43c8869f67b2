package zoom

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthExchangeError(t *testing.T) {
	inner := errors.New("oauth2: cannot fetch token")
	err := &AuthExchangeError{StatusCode: 400, Body: `{"error":"invalid_grant"}`, Err: inner}

	assert.Equal(t, `zoom token exchange failed with status 400: {"error":"invalid_grant"}`, err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestAPIRequestError(t *testing.T) {
	err := &APIRequestError{Operation: "list_users", StatusCode: 404, Body: "not found"}
	assert.Equal(t, "zoom list_users failed with status 404: not found", err.Error())
}

func TestIsStatus(t *testing.T) {
	wrapped := fmt.Errorf("step failed: %w", &APIRequestError{Operation: "account_info", StatusCode: 403})

	assert.True(t, IsStatus(wrapped, 403))
	assert.False(t, IsStatus(wrapped, 400))
	assert.True(t, IsStatus(&AuthExchangeError{StatusCode: 401}, 401))
	assert.False(t, IsStatus(ErrNotAuthenticated, 401))
	assert.False(t, IsStatus(nil, 200))
}
