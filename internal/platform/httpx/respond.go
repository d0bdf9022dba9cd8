// Package httpx provides JSON request/response utilities. Every error body
// shares the shape {"msg": "..."}.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/taskhive/internal/platform/apierr"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Msg string `json:"msg"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Msg sends a {"msg": ...} body with the given status code.
func Msg(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Msg: msg})
}

// DecodeJSON decodes the request body into target. Parse failures come back
// as a BadRequest taxonomy error so callers can pass them straight to Error.
func DecodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return apierr.BadRequest("Invalid JSON payload")
	}
	return nil
}
