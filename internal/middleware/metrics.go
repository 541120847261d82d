package middleware

import (
	"fmt"
	"net/http"
	"time"

	"hunt-api/internal/ctx"
	"hunt-api/internal/metrics"
	"hunt-api/internal/shared"

	"github.com/aidarkhanov/nanoid"
	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewTrackMiddleware wraps every request in a *ctx.Context and writes one
// end_of_request log line plus status and latency metrics once the handler returns.
func NewTrackMiddleware(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID, _ := nanoid.Generate(shared.RequestIDAlphabet, shared.RequestIDLength)
			reqID = "req_" + reqID
			externalID := c.Request().Header.Get(shared.ExternalRequestIDHeader)
			logger := log.With("request_id", reqID)

			cc := &ctx.Context{
				Context: c,
				Log:     logger,
				Reqid:   reqID,
				LogValues: &ctx.ContextLogValues{
					RequestID:  reqID,
					ExternalID: externalID,
					StartTime:  time.Now(),
					Path:       c.Path(),
				},
			}
			err := next(cc)
			if err != nil {
				// Let echo write the response now so the status below is final
				cc.LogValues.AddError(err)
				c.Error(err)
				err = nil
			}

			cc.LogValues.RequestDuration = time.Since(cc.LogValues.StartTime)
			cc.LogValues.StatusCode = cc.Response().Status
			cc.Log.Desugar().Log(cc.LogValues.Level(), "end_of_request", zap.Object("request", cc.LogValues))

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			metrics.ResponseCodes.WithLabelValues(path, fmt.Sprintf("%d", cc.Response().Status)).Inc()
			metrics.RequestDuration.WithLabelValues(path).Observe(cc.LogValues.RequestDuration.Seconds())
			return err
		}
	}
}

func NewRecoverMiddleware(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return emw.RecoverWithConfig(emw.RecoverConfig{
		StackSize: 1 << 10, // 1 KB
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			defer func() {
				_ = log.Sync()
			}()
			metrics.Panics.Inc()
			log.Errorw("Api Panic", "error", err.Error(), "stack", string(stack))
			return c.String(http.StatusInternalServerError, shared.ErrInternalServerError.Err.Error())
		},
	})
}
