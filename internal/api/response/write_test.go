package response

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, Health{Status: "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "{\"status\":\"ok\"}\n", rr.Body.String())
}

func TestJSONEncodingFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, map[string]float64{"bad": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "INTERNAL_ERROR")
}

func TestCreated(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, "/api/v1/players/p1", Player{ID: "p1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/v1/players/p1", rr.Header().Get("Location"))
	assert.Contains(t, rr.Body.String(), `"id":"p1"`)
}

func TestNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	NoContent(rr)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
