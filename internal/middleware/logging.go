package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the id used to correlate client and backend logs.
const RequestIDHeader = "X-Request-ID"

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// LoggingTransport logs outbound requests. A nil logger disables output but
// request ids are still attached.
func LoggingTransport(next http.RoundTripper, logger *log.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			// RoundTrippers must not modify the caller's request
			r = r.Clone(r.Context())
			r.Header.Set(RequestIDHeader, id)
		}

		resp, err := next.RoundTrip(r)

		if logger == nil {
			return resp, err
		}
		duration := time.Since(start)
		if err != nil {
			logger.Printf(
				"method=%s path=%s error=%q duration=%s request_id=%s",
				r.Method,
				r.URL.Path,
				err.Error(),
				duration,
				id,
			)
			return resp, err
		}
		logger.Printf(
			"method=%s path=%s status=%d duration=%s request_id=%s",
			r.Method,
			r.URL.Path,
			resp.StatusCode,
			duration,
			id,
		)
		return resp, err
	})
}
