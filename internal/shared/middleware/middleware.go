package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader scopes a request to a client-chosen session. Requests
	// without it share the default session.
	SessionHeader = "X-Session-ID"

	RequestIDHeader = "X-Request-ID"

	// defaultSessionID must stay in sync with sessions.DefaultSessionID;
	// middleware cannot import the sessions package without a cycle through
	// the domain packages.
	defaultSessionID = "default"

	sessionIDKey = "session_id"
	requestIDKey = "request_id"
)

// SessionScope resolves the session id for each request and stashes it in the
// gin context for handlers.
func SessionScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = defaultSessionID
		}
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the session id resolved by SessionScope.
func SessionID(c *gin.Context) string {
	if id := c.GetString(sessionIDKey); id != "" {
		return id
	}
	return defaultSessionID
}

// RequestID assigns each request a unique id, honoring one supplied by the
// client, and echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request id assigned by RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
