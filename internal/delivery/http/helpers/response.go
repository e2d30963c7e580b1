// Package helpers contains small utilities shared by the HTTP controllers.
package helpers

import (
	"net/http"

	"github.com/goccy/go-json"
)

// ErrorResponse is the error body for every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes statusCode with an {"error": message} body.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// DecodeJSON decodes the request body into dest, rejecting unknown fields.
// On failure it writes a 400 JSON error and returns false; callers should
// return immediately when DecodeJSON returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
