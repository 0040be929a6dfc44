package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/stackline/internal/api/apierr"
	"github.com/mcoot/stackline/internal/api/response"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/health":
			response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
		case "/api/v1/games/X":
			apierr.WriteError(w, apierr.NewNotFoundError("Game not found"))
		default:
			http.Error(w, "teapot", http.StatusTeapot)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")

	var health response.Health
	require.NoError(t, c.Get(context.Background(), "/api/v1/health", &health))
	assert.Equal(t, "ok", health.Status)

	err := c.Get(context.Background(), "/api/v1/games/X", nil)
	require.Error(t, err)
	assert.Equal(t, "Game not found (NOT_FOUND)", err.Error())

	err = c.Get(context.Background(), "/elsewhere", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 418: teapot", err.Error())
}
