package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request bodies; credentials are capped at 255 chars.
const maxBodyBytes = 1 << 16

// decodeJSON reads a single JSON object from the body into dst and checks
// it against its validation rules. Unknown fields are rejected.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON object", ErrInvalidJSON)
	}

	return h.validator.Validate(r.Context(), dst)
}

// userIDFromPath parses the {id} path segment.
func userIDFromPath(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}

	return userID, nil
}
