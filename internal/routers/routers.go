// Package routers
package routers

import (
	"errors"
	"io"
	"net/http"

	"hunt-api/internal/ctx"
	"hunt-api/internal/shared"

	"github.com/labstack/echo/v4"
)

func readRequestBody(c *ctx.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		c.Log.Errorw("Failed to read request body", "error", err.Error())
		// body limit errors already carry their own status
		var herr *echo.HTTPError
		if errors.As(err, &herr) {
			return nil, err
		}
		return nil, errors.Join(errors.New("failed to read request body"), err, shared.ErrBadRequest)
	}
	return body, nil
}

// respondError records the full error chain for the request log and sends
// the caller a generic message. Every 400 looks the same from outside.
func respondError(c *ctx.Context, err error) error {
	c.LogValues.AddError(err)

	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		return c.JSON(herr.Code, map[string]string{"error": http.StatusText(herr.Code)})
	}

	var rerr *shared.RequestError
	switch true {
	case !errors.As(err, &rerr) || rerr.StatusCode >= http.StatusInternalServerError:
		c.LogValues.LogLevel = "ERROR"
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": shared.ErrInternalServerError.Err.Error()})
	case rerr.StatusCode == http.StatusBadRequest:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": shared.ErrBadRequest.Err.Error()})
	default:
		return c.JSON(rerr.StatusCode, map[string]string{"error": rerr.Err.Error()})
	}
}
