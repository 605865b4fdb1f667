package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Error is the uniform failure value for non-2xx responses. Message carries
// the best available server-side explanation.
type Error struct {
	Status  int
	Message string
	Data    json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// newError builds an *Error from a status code and response body. The
// message is taken from a JSON body's "message", "error" or "msg" field,
// falling back to the raw text, falling back to a generic string.
func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Message: "HTTP error"}

	if len(body) == 0 {
		return e
	}
	e.Data = json.RawMessage(body)

	var fields struct {
		Message string `json:"message"`
		Err     string `json:"error"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &fields); err == nil {
		switch {
		case fields.Message != "":
			e.Message = fields.Message
			return e
		case fields.Err != "":
			e.Message = fields.Err
			return e
		case fields.Msg != "":
			e.Message = fields.Msg
			return e
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && utf8.ValidString(text) {
		e.Message = text
	}
	return e
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an *Error.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsStatus reports whether err is an *Error with the given status code.
func IsStatus(err error, status int) bool {
	return StatusCode(err) == status
}

// IsUnauthorized reports whether err is a 401 failure.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
