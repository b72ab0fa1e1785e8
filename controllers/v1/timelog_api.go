package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"inspection-tools-backend/controllers"
	timeloghandler "inspection-tools-backend/lib/timelog"
	"inspection-tools-backend/middleware"
	apimodels "inspection-tools-backend/models/api"
)

type timeLogApiController struct {
	controllers.BaseAPIController
}

func InitTimeLogApiRouters(app *fiber.App) {
	controller := timeLogApiController{}
	app.Route("timelog", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Post("", controller.clockIn)
		router.Put("", controller.clockOut)
		router.Get("export", controller.export)
	})
}

// @Summary Time log view
// @Tags TimeLog
// @Description Technicians get their latest clock session, approvers all sessions
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timelog [get]
func (c *timeLogApiController) get(ctx *fiber.Ctx) error {
	role := middleware.GetUserRole(ctx)
	if role.IsApprover() {
		list, err := timeloghandler.Instance.ListAll()
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list time logs")
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	view, err := timeloghandler.Instance.Latest(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load latest time log")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Clock in
// @Tags TimeLog
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=timelogapimodels.TimeLogView}
// @Failure 401
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timelog [post]
func (c *timeLogApiController) clockIn(ctx *fiber.Ctx) error {
	view, err := timeloghandler.Instance.ClockIn(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to clock in")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Clock out
// @Tags TimeLog
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=timelogapimodels.TimeLogView}
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timelog [put]
func (c *timeLogApiController) clockOut(ctx *fiber.Ctx) error {
	view, err := timeloghandler.Instance.ClockOut(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to clock out")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Export today's time logs
// @Tags TimeLog
// @Description Approver only; today's closed sessions as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timelog/export [get]
func (c *timeLogApiController) export(ctx *fiber.Ctx) error {
	buf, err := timeloghandler.Instance.ExportToday()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export time logs")
	}
	fileName := fmt.Sprintf("timelog_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
