package download

import "net/http"

// StatusError is returned when the server answers with a non-200 status
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "unexpected response status: " + e.Status
}

// Temporary reports whether retrying the request may succeed
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}
