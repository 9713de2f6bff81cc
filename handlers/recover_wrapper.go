package handlers

import (
	"net/http"
	"runtime"

	"jobportal/logger"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logger.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"stack", string(stack),
				)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
		}()

		handler(w, r)
	}
}
