package shared

import "time"

// Server Configuration
const (
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultReadTimeout      = 30 * time.Second
	DefaultMaxHeaderBytes   = 1 << 20
	DefaultBodyLimit        = "1M"
	DefaultAddr             = ":80"
	DefaultServiceName      = "hunt-api"
	RequestIDAlphabet       = "0123456789abcdefghijklmnopqrstuvwxyz"
	RequestIDLength         = 28
	ExternalRequestIDHeader = "X-Request-Id"
)

// API Configuration
const (
	APIKeyLength = 32
)

// Cookie payload
const (
	RecipeHeader = "Cookie"
	RecipePrefix = "recipe="
)

const HelloWorld = "Hello, world!"
