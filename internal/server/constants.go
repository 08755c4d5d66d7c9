package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAuthorization   = "Authorization"
	HeaderContentTypeOpts = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderCacheControl    = "Cache-Control"
)

// Response header values. The API serves live game state to local
// clients: never cached, never framed, never sniffed.
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDenyFrames = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// RedactedValue replaces Authorization header values in debug logs
const RedactedValue = "[REDACTED]"
