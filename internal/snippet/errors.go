package snippet

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error represents an error response from the snippet service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("snippet service: %s (HTTP %d)", e.Message, e.StatusCode)
}

// checkResponse validates a service response. It tries to parse
// {"error":"..."} from the body, falling back to status code mapping.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    apiErr.Error,
		}
	}

	return &Error{
		StatusCode: resp.StatusCode,
		Message:    statusMessage(resp.StatusCode),
	}
}

// statusMessage maps HTTP status codes to human-readable error messages.
func statusMessage(code int) string {
	switch code {
	case http.StatusNotFound:
		return "snippet not found"
	case http.StatusUnauthorized:
		return "missing or invalid token"
	case http.StatusForbidden:
		return "access denied or rate limited"
	case http.StatusRequestEntityTooLarge:
		return "snippet too large"
	case http.StatusUnprocessableEntity:
		return "invalid snippet payload"
	case http.StatusTooManyRequests:
		return "rate limited, try again later"
	default:
		return fmt.Sprintf("unexpected error (HTTP %d)", code)
	}
}
