// Package handlers contains the HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ispsupport/hub/internal/api/response"
)

// decodeBody decodes a JSON request body into dst and writes the error
// response itself on failure. Returns false when the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, strict bool) bool {
	decoder := json.NewDecoder(r.Body)
	if strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.RespondError(w, http.StatusRequestEntityTooLarge,
				"Request Entity Too Large", "request body exceeds maximum allowed size")

			return false
		}

		response.RespondBadRequest(w, "Invalid request body")

		return false
	}

	return true
}
