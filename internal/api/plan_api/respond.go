package plan_api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

var notFoundErrs = []error{
	plan_repository.ErrBoardNotFound,
	plan_repository.ErrCardNotFound,
	plan_repository.ErrChecklistNotFound,
	plan_repository.ErrToDoListNotFound,
}

var nameTakenErrs = []error{
	plan_repository.ErrBoardNameTaken,
	plan_repository.ErrCardNameTaken,
	plan_repository.ErrChecklistNameTaken,
	plan_repository.ErrToDoListNameTaken,
}

// handleError maps validation and repository errors onto response codes;
// anything unrecognised becomes a logged 500.
func handleError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": verrs.Error(),
			"errors":  verrs,
		})
		return
	}

	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": sentinel.Error()})
			return
		}
	}
	for _, sentinel := range nameTakenErrs {
		if errors.Is(err, sentinel) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": sentinel.Error()})
			return
		}
	}

	slog.Error("unhandled api error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}
