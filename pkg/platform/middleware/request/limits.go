package request

import (
	"mime"
	"net/http"
	"time"

	"github.com/be1500616/zergoqrf/pkg/platform/httputil"
)

const timeoutBody = `{"error":"TIMEOUT","error_code":"TIMEOUT","message":"Request timed out","details":[]}`

// Timeout bounds handler run time and answers 503 with a JSON envelope.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}

// ContentTypeJSON rejects bodies on POST, PUT and PATCH declared as anything
// other than JSON. A missing Content-Type is allowed.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBody(r.Method) && !acceptsJSON(r.Header.Get("Content-Type")) {
			httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.ErrorResponse{
				Error:     "BAD_REQUEST",
				ErrorCode: "BAD_REQUEST",
				Message:   "Content-Type must be application/json",
				Details:   []httputil.ErrorDetail{},
				Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func hasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func acceptsJSON(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// BodyLimit caps request bodies at maxBytes; decoding past the cap fails
// with a bad request.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
