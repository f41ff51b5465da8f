package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is returned for every non-2xx API reply.
type Error struct {
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %d %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.Status, http.StatusText(e.Status))
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }
func IsConflict(err error) bool     { return StatusOf(err) == http.StatusConflict }
func IsNotFound(err error) bool     { return StatusOf(err) == http.StatusNotFound }

// MessageOf returns the server supplied message of an API error, if any.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// errorMessage extracts "message" or "error" from a JSON body; a short plain
// text body is used as is.
func errorMessage(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return ""
	}
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Title   string `json:"title"`
	}
	if json.Unmarshal(body, &m) == nil {
		switch {
		case m.Message != "":
			return m.Message
		case m.Error != "":
			return m.Error
		case m.Title != "":
			return m.Title
		}
		return ""
	}
	var str string
	if json.Unmarshal(body, &str) == nil {
		return str
	}
	if len(s) > 200 || strings.HasPrefix(s, "<") {
		return ""
	}
	return s
}
