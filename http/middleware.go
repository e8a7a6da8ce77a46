package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/websum"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request ID in requests and responses.
const RequestIDHeader = "X-Request-ID"

// requestID attaches a request ID to the context and the response, reusing
// an incoming X-Request-ID when present, and logs each completed request.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := websum.NewContextWithRequestID(r.Context(), id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func(begin time.Time) {
			s.Logger.InfoContext(ctx, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

// recoverPanic turns a panic in a handler into a 500 response.
func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				if rv == http.ErrAbortHandler {
					panic(rv)
				}
				s.Logger.ErrorContext(r.Context(), "panic in handler",
					"panic", fmt.Sprint(rv),
					"path", r.URL.Path,
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
