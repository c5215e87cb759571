package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses an integer path parameter; an unparsable id behaves like a
// missing record.
func pathID(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}
