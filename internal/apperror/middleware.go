package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)

		var appErr *AppError
		if err != nil {
			if errors.As(err, &appErr) {
				w.WriteHeader(statusOf(err, appErr))
				w.Write(appErr.Marshal())

				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			w.Write(internalError().Marshal())
		}
	}
}

func statusOf(err error, appErr *AppError) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case appErr.Status != 0:
		return appErr.Status
	default:
		return http.StatusBadRequest
	}
}
