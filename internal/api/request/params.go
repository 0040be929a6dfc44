package request

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/stackline/internal/api/apierr"
	"github.com/mcoot/stackline/internal/model"
)

// GameID reads the {id} path variable
func GameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// Column reads the {x} and {y} path variables
func Column(r *http.Request) (x, y int, err error) {
	if x, err = intVar(r, "x"); err != nil {
		return 0, 0, err
	}
	if y, err = intVar(r, "y"); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Height reads the {z} path variable
func Height(r *http.Request) (int, error) {
	return intVar(r, "z")
}

func intVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.NewInvalidRequestError(name + " must be an integer, got " + strconv.Quote(raw))
	}
	return v, nil
}
