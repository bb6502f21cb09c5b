package respond

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/dto"
)

// JSON пишет тело с кодом статуса. Ошибку кодирования логирует вызывающий.
func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Fail(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.Fail(message))
}

func OK(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.OK(message))
}

// NotFound и MethodNotAllowed для роутера.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = Fail(w, http.StatusNotFound, "resource not found")
	})
}

func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = Fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}
