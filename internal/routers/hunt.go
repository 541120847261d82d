package routers

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"hunt-api/internal/ctx"
	"hunt-api/internal/handlers/elf"
	"hunt-api/internal/handlers/reindeer"
	"hunt-api/internal/handlers/sled"
	"hunt-api/internal/shared"

	"github.com/labstack/echo/v4"
)

// RegisterHuntRoutes registers the stateless puzzle endpoints
func RegisterHuntRoutes(e *echo.Group) {
	e.GET("/", HelloWorld)
	e.GET("/-1/error", HelloError)
	e.GET("/1/*", CubeBits)
	e.POST("/4/strength", Strength)
	e.POST("/4/contest", Contest)
	e.POST("/6", ElfCount)
}

func HelloWorld(cc echo.Context) error {
	return cc.String(http.StatusOK, shared.HelloWorld)
}

func HelloError(cc echo.Context) error {
	return cc.NoContent(http.StatusInternalServerError)
}

func CubeBits(cc echo.Context) error {
	c := cc.(*ctx.Context)
	res, err := sled.CubeBitsLogic(c.Param("*"))
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, strconv.FormatInt(res, 10))
}

func Strength(cc echo.Context) error {
	c := cc.(*ctx.Context)
	body, err := readRequestBody(c)
	if err != nil {
		return respondError(c, err)
	}
	total, err := reindeer.StrengthLogic(body)
	if err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusOK, strconv.FormatUint(total, 10))
}

func Contest(cc echo.Context) error {
	c := cc.(*ctx.Context)
	body, err := readRequestBody(c)
	if err != nil {
		return respondError(c, err)
	}
	results, err := reindeer.ContestLogic(body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func ElfCount(cc echo.Context) error {
	c := cc.(*ctx.Context)
	body, err := readRequestBody(c)
	if err != nil {
		return respondError(c, err)
	}
	if !utf8.Valid(body) {
		return respondError(c, errors.Join(errors.New("body is not valid utf-8"), shared.ErrBadRequest))
	}
	return c.JSON(http.StatusOK, elf.CountLogic(string(body)))
}
