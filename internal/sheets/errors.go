package sheets

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("spreadsheet not found")
	ErrNetwork          = errors.New("network error")
	ErrConnection       = errors.New("connection error")
)

// StatusError is a non-2xx response from the remote store.
type StatusError struct {
	Code    int
	Message string
}

func (e StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sheets: http %d", e.Code)
	}
	return fmt.Sprintf("sheets: http %d: %s", e.Code, e.Message)
}

// Unwrap classifies the status into one of the sentinel errors.
func (e StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrConnection
	}
}

// classifyTransport wraps a failed round trip as ErrNetwork.
func classifyTransport(err error) error {
	var ue *url.Error
	var ne net.Error
	if errors.As(err, &ue) || errors.As(err, &ne) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// UserMessage maps a store error to the message shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "The API key is invalid or has no access to this spreadsheet."
	case errors.Is(err, ErrNotFound):
		return "No spreadsheet was found with this ID."
	case errors.Is(err, ErrNetwork):
		return "Network error. Check your internet connection."
	default:
		return "Could not connect to the spreadsheet. Check your settings."
	}
}
