package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAuthorization   = "Authorization"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderContentTypeOpts = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderXSSProtection   = "X-XSS-Protection"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderRequestID       = "X-Request-ID"
	HeaderCacheControl    = "Cache-Control"
)

// APIPrefix is where the scavenger API is mounted
const APIPrefix = "/api/v1"

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDenyFrames           = "DENY"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// Request limits
const (
	MaxRequestBodyBytes = 1 << 20
	RateLimitRequests   = 1000
	RateLimitWindow     = 5 * time.Minute
	ReadHeaderTimeout   = 5 * time.Second
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
