package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    statusCode,
			"message": message,
		},
	})
}

func sendSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": data,
	})
}

// sendServiceError maps a business failure to its status code. Not-found maps
// to 404, duplicates and insufficient funds to 400, ask timeouts to 500.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		sendErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrAlreadyExists), errors.Is(err, model.ErrInsufficientFunds):
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
	default:
		sendErrorResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

// pathID parses the {id} path segment; ids are positive integers.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
