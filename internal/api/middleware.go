package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"bankmock/internal/token"
)

type contextKey string

const identityKey contextKey = "identity"

// RequireAuth verifies the bearer token and injects the decoded identity
// into the request context. A missing header, a non-Bearer scheme and a bad
// signature all produce the same 401 body; callers learn nothing about the
// internal cause.
func RequireAuth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the authenticated identity stored by RequireAuth.
func Identity(ctx context.Context) string {
	id, _ := ctx.Value(identityKey).(string)
	return id
}

// Recoverer is the catch-all for unexpected faults: any panic during
// handling becomes a 504 with the contract's generic message.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panic",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
					)
					writeError(w, r, http.StatusGatewayTimeout, msgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// loggedResponseWriter captures the status code and response length for the
// access log.
type loggedResponseWriter struct {
	http.ResponseWriter
	statusCode     int
	responseLength int64
}

func (lrw *loggedResponseWriter) WriteHeader(statusCode int) {
	lrw.statusCode = statusCode
	lrw.ResponseWriter.WriteHeader(statusCode)
}

func (lrw *loggedResponseWriter) Write(b []byte) (int, error) {
	size, err := lrw.ResponseWriter.Write(b)
	lrw.responseLength += int64(size)
	return size, err
}

// RequestLogger logs one line per request with method, path, status and
// response size.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(lrw, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", lrw.statusCode),
				zap.Int64("rsp_body_len", lrw.responseLength),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
