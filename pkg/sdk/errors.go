package roomsearch

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the server.
// Use errors.As() to inspect the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("roomsearch: server returned %d: %s", e.StatusCode, e.Message)
}

func apiErrorFrom(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
