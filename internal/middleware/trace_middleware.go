package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceHeader carries the request trace id. The same id doubles as the
// idempotency key on gateway charge creation.
const TraceHeader = "X-Request-Id"

type traceKey struct{}

// RequestTrace keeps the inbound trace id (or mints one) on the request
// context and echoes it back on the response.
func RequestTrace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(TraceHeader)
			if id == "" {
				id = uuid.NewString()
			}
			ctx := context.WithValue(c.Request().Context(), traceKey{}, id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceHeader, id)
			return next(c)
		}
	}
}

// TraceID returns the trace id carried on ctx, or "" when there is none.
func TraceID(ctx context.Context) string {
	if v, ok := ctx.Value(traceKey{}).(string); ok {
		return v
	}
	return ""
}

// WithTraceID attaches a trace id to ctx (used by callers outside the HTTP layer).
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}
