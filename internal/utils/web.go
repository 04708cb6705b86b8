package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nahid-dev/portfolio-api/internal/api"
	"github.com/nahid-dev/portfolio-api/internal/errors"
	"github.com/nahid-dev/portfolio-api/internal/logger"
)

// WriteJSON serializes v with a 200 status.
func WriteJSON(w http.ResponseWriter, v interface{}) {
	WriteJSONStatus(w, v, http.StatusOK)
}

func WriteJSONStatus(w http.ResponseWriter, v interface{}, status int) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// WriteError converts any failure into a structured error body.
// This is the request-level boundary: store and gateway errors never
// propagate past a handler unconverted.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSONStatus(w, api.ErrorResponse{Error: true, Message: err.Error()}, errors.StatusCode(err))
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Error("invalid request body", "error", err)
		return errors.New("body is invalid json", http.StatusBadRequest)
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Error("request validation failed", "error", err)
		return errors.New("required fields missing", http.StatusBadRequest)
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Error("invalid request body", "error", err)
		return errors.New("body is invalid json", http.StatusBadRequest)
	}
	return nil
}
