package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body cannot be empty")

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if decoder.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

func ValidateStruct(validate *validator.Validate, data any) error {
	if err := validate.Struct(data); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ParseID reads a positive integer path value.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}

	return id, nil
}
