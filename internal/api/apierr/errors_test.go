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

	"github.com/mcoot/stackline/internal/model"
)

func TestWriteErrorMapsModelErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"out of bounds", fmt.Errorf("%w: (10, 0)", model.ErrOutOfBounds), http.StatusBadRequest, CodeOutOfBounds},
		{"height exceeded", model.ErrHeightExceeded, http.StatusConflict, CodeHeightExceeded},
		{"invalid piece", model.ErrInvalidPiece, http.StatusBadRequest, CodeInvalidPiece},
		{"game not found", model.ErrGameNotFound, http.StatusNotFound, CodeGameNotFound},
		{"game complete", model.ErrGameComplete, http.StatusConflict, CodeGameComplete},
		{"invalid request", NewInvalidRequestError("bad x"), http.StatusBadRequest, CodeInvalidRequest},
		{"empty cell", NewNotFoundError("no piece"), http.StatusNotFound, CodeNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.status, Status(tt.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}
