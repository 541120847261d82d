package routers

import (
	"net/http"

	"hunt-api/internal/ctx"
	"hunt-api/internal/handlers/cookie"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type CookieRouter struct {
	ch *cookie.CookieHandler
}

func RegisterCookieRoutes(e *echo.Group, log *zap.SugaredLogger, tracer trace.Tracer) {
	cookieRouter := CookieRouter{ch: cookie.NewCookieHandler(log, tracer)}

	day7 := e.Group("/7")
	day7.GET("/decode", cookieRouter.Decode)
	day7.GET("/bake", cookieRouter.Bake)
}

// Decode returns the decoded recipe payload as plain text
func (cr *CookieRouter) Decode(cc echo.Context) error {
	c := cc.(*ctx.Context)

	output, err := cr.ch.DecodeLogic(cookie.DecodeInput{
		Ctx:    c.Request().Context(),
		Header: c.Request().Header,
		Log:    c.Log,
	})
	if err != nil {
		return respondError(c, err)
	}
	c.LogValues.PayloadBytes = len(output.Payload)
	return c.String(http.StatusOK, output.Payload)
}

func (cr *CookieRouter) Bake(cc echo.Context) error {
	c := cc.(*ctx.Context)

	output, err := cr.ch.BakeLogic(cookie.BakeInput{
		Ctx:    c.Request().Context(),
		Header: c.Request().Header,
		Log:    c.Log,
	})
	if err != nil {
		return respondError(c, err)
	}
	c.LogValues.PayloadBytes = output.PayloadBytes
	c.LogValues.Cookies = &output.Result.Cookies
	return c.JSON(http.StatusOK, output.Result)
}
