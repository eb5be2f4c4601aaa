package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/opn/backend/internal/shared/id"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// RequestID assigns every request an ID. A valid client-supplied ID is
// kept, anything else is replaced with a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID, err := id.ParseRequestID(c.GetHeader(RequestIDHeader))
		if err != nil {
			reqID = id.NewRequestID()
		}

		c.Set(RequestIDKey, reqID.String())
		c.Header(RequestIDHeader, reqID.String())
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
