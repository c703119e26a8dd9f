package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleplanner/internal/model"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{model.ErrInvalidConfiguration, http.StatusBadRequest},
		{model.ErrDuplicatePlayer, http.StatusBadRequest},
		{model.ErrInvalidPlayer, http.StatusBadRequest},
		{model.ErrInvalidMatchPoints, http.StatusBadRequest},
		{model.ErrInsufficientPlayers, http.StatusUnprocessableEntity},
		{model.ErrPlayerNotFound, http.StatusNotFound},
		{model.ErrSessionNotFound, http.StatusNotFound},
		{model.ErrMatchNotFound, http.StatusNotFound},
		{model.ErrInvalidStatusTransition, http.StatusConflict},
		{model.ErrSessionCompleted, http.StatusConflict},
		{model.ErrMatchCompleted, http.StatusConflict},
		{NewInvalidRequestError("bad"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestWriteErrorKeepsValidationDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, fmt.Errorf("%w: match minutes must be positive, got 0", model.ErrInvalidConfiguration))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, CodeInvalidConfiguration, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "match minutes must be positive")
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("redis: connection refused"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, CodeInternalError, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "redis")
}
