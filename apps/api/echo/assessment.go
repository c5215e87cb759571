package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/assessment"
)

type assessmentApi struct {
	svc assessment.Service
}

func registerAssessmentAPI(g *echo.Group, svc assessment.Service) {
	api := assessmentApi{svc: svc}

	ag := g.Group("/assessments")
	ag.POST("", api.create)
	ag.GET("", api.query)
	ag.GET("/subject/:id", api.queryBySubject)
	ag.GET("/faculty/:id", api.queryByFaculty)
	ag.GET("/:id", api.retrieve)
}

func (api *assessmentApi) create(ctx echo.Context) error {
	var data assessment.NewAssessment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssessment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	asmt, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assessment")
	}
	return ctx.JSON(http.StatusCreated, asmt)
}

func (api *assessmentApi) query(ctx echo.Context) error {
	asmts, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying assessments")
	}
	if asmts == nil {
		asmts = []assessment.Assessment{}
	}
	return ctx.JSON(http.StatusOK, asmts)
}

func (api *assessmentApi) queryBySubject(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	asmts, err := api.svc.FindBySubject(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying assessments by subject")
	}
	if asmts == nil {
		asmts = []assessment.Assessment{}
	}
	return ctx.JSON(http.StatusOK, asmts)
}

func (api *assessmentApi) queryByFaculty(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	asmts, err := api.svc.FindByFaculty(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying assessments by faculty")
	}
	if asmts == nil {
		asmts = []assessment.Assessment{}
	}
	return ctx.JSON(http.StatusOK, asmts)
}

func (api *assessmentApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	asmt, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, asmt)
}
