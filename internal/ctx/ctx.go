// Package ctx
package ctx

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextLogValues should only be accessed for logging, and not for
// actual business logic, or any other logic
type ContextLogValues struct {
	// Added in base middleware
	RequestID       string
	ExternalID      string
	StartTime       time.Time
	StatusCode      int
	RequestDuration time.Duration
	Path            string

	// Added by the cookie routes
	Cookies      *uint64
	PayloadBytes int

	// Override log Log Level
	LogLevel string

	// Added dynamically
	Error error
}

// AddError adds errors to the error chain. Always add errors, even if only warnings.
// Log level is determined by the status code of the request
func (c *ContextLogValues) AddError(err error) {
	if err == nil {
		return
	}
	if c.Error == nil {
		c.Error = err
		return
	}
	c.Error = fmt.Errorf("%w: %w", err, c.Error)
}

// Level picks the log level for end_of_request
func (c *ContextLogValues) Level() zapcore.Level {
	if c.LogLevel != "" {
		if lvl, err := zapcore.ParseLevel(c.LogLevel); err == nil {
			return lvl
		}
	}
	switch {
	case c.StatusCode >= 500:
		return zapcore.ErrorLevel
	case c.StatusCode >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

func (c *ContextLogValues) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("request_id", c.RequestID)
	enc.AddString("external_id", c.ExternalID)
	enc.AddTime("start_time", c.StartTime)
	enc.AddDuration("request_duration", c.RequestDuration)
	enc.AddInt("status_code", c.StatusCode)
	if c.Cookies != nil {
		enc.AddUint64("cookies", *c.Cookies)
	}
	if c.PayloadBytes != 0 {
		enc.AddInt("payload_bytes", c.PayloadBytes)
	}
	if c.Error != nil {
		enc.AddString("error", c.Error.Error())
	}
	enc.AddString("path", c.Path)
	return nil
}

type Context struct {
	echo.Context
	Log       *zap.SugaredLogger
	Reqid     string
	LogValues *ContextLogValues
}
