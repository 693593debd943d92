package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxBodyMessage caps how much of a non-JSON body is shown to the user.
const maxBodyMessage = 200

// APIError is returned for every non-2xx response. It carries the status and
// whatever the server said; callers decide what the status means.
type APIError struct {
	StatusCode int
	Detail     string // server-provided message, empty when none
	Body       string // raw response body
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ServerMessage returns the message the server put in the body, if any.
// Without a JSON detail, a short plain-text body is used instead.
func (e *APIError) ServerMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return bodyMessage(e.Body)
}

// bodyMessage returns the first line of a plain-text body, truncated.
// HTML and JSON bodies yield "".
func bodyMessage(body string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(body), "\n")
	line = strings.TrimSpace(line)
	if line == "" || strings.ContainsAny(line[:1], "<{[") {
		return ""
	}
	if utf8.RuneCountInString(line) > maxBodyMessage {
		line = string([]rune(line)[:maxBodyMessage]) + "..."
	}
	return line
}

// newAPIError builds an APIError from a raw response.
func newAPIError(status int, body []byte) *APIError {
	return &APIError{
		StatusCode: status,
		Detail:     parseDetail(body),
		Body:       string(body),
	}
}

// parseDetail extracts the server message from a FastAPI-style
// {"detail": ...} body. A non-string detail (validation error lists) is
// returned as compact JSON. Bodies that are not JSON objects yield "".
func parseDetail(body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 || string(raw) == "null" {
		return strings.TrimSpace(envelope.Message)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}
