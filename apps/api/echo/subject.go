package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/subject"
)

type subjectApi struct {
	svc subject.Service
}

func registerSubjectAPI(g *echo.Group, svc subject.Service) {
	api := subjectApi{svc: svc}

	sg := g.Group("/subjects")
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.GET("/faculty/:id", api.queryByFaculty)
	sg.GET("/student/:id", api.queryByStudent)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
	sg.GET("/:id/students", api.students)
	sg.POST("/:id/students/:studentId", api.enroll)
	sg.DELETE("/:id/students/:studentId", api.unenroll)
}

func (api *subjectApi) create(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subject")
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *subjectApi) query(ctx echo.Context) error {
	subs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	if subs == nil {
		subs = []subject.Subject{}
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *subjectApi) queryByFaculty(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	subs, err := api.svc.FindByFaculty(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying subjects by faculty")
	}
	if subs == nil {
		subs = []subject.Subject{}
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *subjectApi) queryByStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	subs, err := api.svc.FindByStudent(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying subjects by student")
	}
	if subs == nil {
		subs = []subject.Subject{}
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *subjectApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	sub, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	sub, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	var data subject.UpdateSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSubject")
	}
	if err := data.Validate(sub); err != nil {
		return err
	}

	sub, err = api.svc.Update(ctx.Request().Context(), sub.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating subject")
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *subjectApi) students(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	sub, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	ids := sub.StudentIDs
	if ids == nil {
		ids = []int{}
	}
	return ctx.JSON(http.StatusOK, ids)
}

func (api *subjectApi) enroll(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	sub, err := api.svc.Enroll(ctx.Request().Context(), id, studentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) unenroll(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	sub, err := api.svc.Unenroll(ctx.Request().Context(), id, studentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}
