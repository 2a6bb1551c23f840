package middleware

import (
	"net/http"
	"os"
	"strconv"
)

// MaxBodyMiddleware caps request body size at MAX_BODY_BYTES. The 10 MiB
// default leaves room for multipart artwork uploads.
func MaxBodyMiddleware(next http.Handler) http.Handler {
	max := int64(10 << 20)
	if s := os.Getenv("MAX_BODY_BYTES"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
			max = v
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, max)
		next.ServeHTTP(w, r)
	})
}
