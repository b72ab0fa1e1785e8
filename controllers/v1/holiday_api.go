package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"inspection-tools-backend/controllers"
	holidayhandler "inspection-tools-backend/lib/holiday"
	apimodels "inspection-tools-backend/models/api"
	holidayapimodels "inspection-tools-backend/models/api/holiday"
)

type holidayApiController struct {
	controllers.BaseAPIController
}

func InitHolidayApiRouters(app *fiber.App) {
	controller := holidayApiController{}
	app.Route("holidays", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.add)
		router.Delete("", controller.delete)
	})
}

// @Summary List holidays
// @Tags Holidays
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]holidayapimodels.HolidayView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays [get]
func (c *holidayApiController) list(ctx *fiber.Ctx) error {
	list, err := holidayhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list holidays")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Add a holiday
// @Tags Holidays
// @Description Approver only; flags one calendar date as non-working
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 holidayapimodels.HolidayData	true	"request body"
// @Success 200 {object} apimodels.Response{data=holidayapimodels.HolidayView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays [post]
func (c *holidayApiController) add(ctx *fiber.Ctx) error {
	var payload holidayapimodels.HolidayData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := holidayhandler.Instance.Add(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to add holiday")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Remove a holiday
// @Tags Holidays
// @Description Approver only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 holidayapimodels.HolidayData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays [delete]
func (c *holidayApiController) delete(ctx *fiber.Ctx) error {
	var payload holidayapimodels.HolidayData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := holidayhandler.Instance.Delete(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove holiday")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
