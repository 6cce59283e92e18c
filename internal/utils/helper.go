package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds cart request bodies.
const maxBodyBytes = 64 << 10

var ErrEmptyBody = errors.New("request body cannot be empty")

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {

	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
			return ErrEmptyBody
		}

		slog.Warn("Failed to parse request JSON",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ValidateStruct returns validator.ValidationErrors unwrapped so callers can
// report every failing field.
func ValidateStruct(validate *validator.Validate, data any) error {

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		slog.Warn("Input validation failed", slog.String("error", validationErrs.Error()))
		return validationErrs
	}

	slog.Error("Unexpected validation error", slog.String("error", err.Error()))
	return fmt.Errorf("unexpected validation error: %w", err)
}

// SplitIDs parses a comma separated id list, ignoring blanks. The result is
// never nil.
func SplitIDs(raw string) []string {
	ids := []string{}
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}

	return ids
}
