package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-tool-backend/internal/model"
)

const (
	// HeaderXRequestID carries the invocation ID in and out.
	HeaderXRequestID = "X-Request-ID"

	// ScopeKey is the gin context key holding the invocation scope.
	ScopeKey = "scope"
)

// RequestID assigns each request an invocation ID, honoring one supplied
// by the caller, and stores the invocation scope for handlers and logs.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ScopeKey, model.Scope{
			InvocationID: requestID,
			ClientIP:     extractIP(c.Request),
		})
		c.Writer.Header().Set(HeaderXRequestID, requestID)
		c.Next()
	}
}

// GetScope retrieves the invocation scope set by RequestID.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(ScopeKey); ok {
		if scope, ok := v.(model.Scope); ok {
			return scope
		}
	}
	return model.Scope{}
}
