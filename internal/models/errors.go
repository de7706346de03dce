package models

import (
	"net/http"
)

// APIError is a domain failure carrying the HTTP status and client-facing
// message it should produce. The error pipeline echoes it verbatim.
type APIError struct {
	Status int    `json:"-"`
	Msg    string `json:"msg"`
}

func (e *APIError) Error() string {
	return e.Msg
}

// ErrBadRequest rejects malformed input before it reaches the store.
func ErrBadRequest() *APIError {
	return &APIError{Status: http.StatusBadRequest, Msg: "bad request"}
}

// ErrNotFound reports a well-formed reference to a row that does not exist.
func ErrNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Msg: "not found"}
}
