package logger

// Attribute keys attached to log lines
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Recognized level strings
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Recognized format strings
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Fallback identity for tools and tests that skip the app config
const (
	DefaultServiceName = "quinfall-companion"
	DefaultVersion     = "dev"
)
