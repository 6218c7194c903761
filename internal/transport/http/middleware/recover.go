package middleware

import (
	"log/slog"
	"net/http"

	"nomina/internal/transport/http/api"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				reqID := GetRequestID(r.Context())
				slog.Error("panic recovered", "err", rec, "requestId", reqID)
				api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", reqID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
