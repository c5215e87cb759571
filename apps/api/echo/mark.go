package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/mark"
)

type markApi struct {
	svc mark.Service
}

func registerMarkAPI(g *echo.Group, svc mark.Service) {
	api := markApi{svc: svc}

	mg := g.Group("/marks")
	mg.POST("", api.record)
	mg.GET("/student/:id", api.queryByStudent)
	mg.GET("/faculty/:id", api.queryByFaculty)
}

// record runs the whole evaluation pipeline; a payload carrying an existing
// mark id re-evaluates that mark instead of creating a new one.
func (api *markApi) record(ctx echo.Context) error {
	var data mark.NewMark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMark")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	m, err := api.svc.Record(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *markApi) queryByStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	marks, err := api.svc.FindByStudent(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying marks by student")
	}
	if marks == nil {
		marks = []mark.Mark{}
	}
	return ctx.JSON(http.StatusOK, marks)
}

func (api *markApi) queryByFaculty(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	marks, err := api.svc.FindByFaculty(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying marks by faculty")
	}
	if marks == nil {
		marks = []mark.Mark{}
	}
	return ctx.JSON(http.StatusOK, marks)
}
