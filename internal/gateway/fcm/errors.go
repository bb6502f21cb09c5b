package fcm

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrRejected = errors.New("push rejected for all devices")

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("fcm responded %d %s", e.code, http.StatusText(e.code))
}
