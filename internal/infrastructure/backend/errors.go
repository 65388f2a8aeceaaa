package backend

import (
	"encoding/json"
	"errors"
	"net/http"
)

// APIError is a non-2xx response from the marketplace API. Message carries
// the backend-provided text when the envelope had one; it is what the UI
// ultimately shows in its error toast.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// parseAPIError decodes the API's error envelope. Both {"error": "..."}
// and {"message": "..."} shapes occur across endpoints.
func parseAPIError(statusCode int, body []byte) error {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if len(body) > 0 {
		if err := json.Unmarshal(body, &envelope); err == nil {
			msg = envelope.Error
			if msg == "" {
				msg = envelope.Message
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}

// mapNotFound rewrites a 404 APIError to the entity-specific sentinel so
// callers can branch on errors.Is. Other errors pass through unchanged.
func mapNotFound(err, sentinel error) error {
	var ae *APIError
	if errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound {
		return sentinel
	}
	return err
}

// statusOf returns the HTTP status of an APIError, or 0 for other errors.
func statusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}
