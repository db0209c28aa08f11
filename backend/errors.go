package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError is returned when the backend could not be reached or its
// answer could not be read. Pages show it as "failed to load/save".
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DomainError is a non-2xx answer from the backend. Code carries the
// backend's error code, e.g. NEW_MEMBER_DICE_ALREADY_PLAYED.
type DomainError struct {
	Op      string
	Status  int
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Code, e.Status)
	}
	return fmt.Sprintf("%s: %s: %s (status %d)", e.Op, e.Code, e.Message, e.Status)
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// DomainCode returns the backend error code carried by err, if any.
func DomainCode(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) && de.Code != "" {
		return de.Code, true
	}
	return "", false
}

// StatusOf returns the HTTP status a failed call should be answered with by
// a proxying handler.
func StatusOf(err error) int {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Status
	}
	return http.StatusBadGateway
}
