package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/stackline/internal/api/apierr"
	"github.com/mcoot/stackline/internal/testutil"
)

func TestRecoveryWritesInternalError(t *testing.T) {
	logger, logs := testutil.CaptureLogger()
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/games", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body apierr.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, apierr.CodeInternalError, body.Error.Code)
	assert.Contains(t, logs.String(), `"msg":"panic recovered"`)
	assert.Contains(t, logs.String(), `"component":"api"`)
}

func TestLoggingTagsGameID(t *testing.T) {
	logger, logs := testutil.CaptureLogger()

	r := mux.NewRouter()
	r.Use(Logging(logger))
	r.HandleFunc("/games/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/games/ABC", nil))
	assert.Contains(t, logs.String(), `"game_id":"ABC"`)
	assert.Contains(t, logs.String(), `"status":204`)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, logs.String(), `"path":"/health"`)
}
