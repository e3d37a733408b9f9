package apictx

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

type ctxKey struct{}

// APICtx contains API request details extracted from the HTTP request.
type APICtx struct {
	Method        string
	URI           string
	Host          string
	RemoteAddr    string
	UserAgent     string
	RequestID     string
	ContentLength int64

	// Algorithm is filled in by the handler once the request body is decoded.
	Algorithm string
	// Cases is the number of matches requested, 1 for single matches.
	Cases int
}

// Inject adds APICtx to the context and returns a new context.
func Inject(c *echo.Context) context.Context {
	req := c.Request()

	apiCtx := APICtx{
		Method:        req.Method,
		URI:           req.RequestURI,
		Host:          req.Host,
		RemoteAddr:    req.RemoteAddr,
		UserAgent:     req.UserAgent(),
		RequestID:     getRequestID(req),
		ContentLength: req.ContentLength,
	}

	return context.WithValue(req.Context(), ctxKey{}, &apiCtx)
}

// FromContext retrieves APICtx from the context.
// Returns nil if APICtx is not present in the context.
func FromContext(ctx context.Context) *APICtx {
	apiCtx, ok := ctx.Value(ctxKey{}).(*APICtx)
	if !ok {
		return nil
	}

	return apiCtx
}

// MustFromContext retrieves APICtx from the context.
// Panics if APICtx is not present in the context.
func MustFromContext(ctx context.Context) *APICtx {
	apiCtx := FromContext(ctx)
	if apiCtx == nil {
		panic("APICtx not found in context")
	}

	return apiCtx
}

// getRequestID extracts request ID from common header names, generating one if absent.
func getRequestID(req *http.Request) string {
	for _, header := range []string{"X-Request-ID", "X-Request-Id", "Request-ID"} {
		if id := req.Header.Get(header); id != "" {
			return id
		}
	}

	return uuid.NewString()
}
