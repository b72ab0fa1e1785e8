package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"inspection-tools-backend/controllers"
	cyclehandler "inspection-tools-backend/lib/cycle"
	"inspection-tools-backend/middleware"
	apimodels "inspection-tools-backend/models/api"
	cycleapimodels "inspection-tools-backend/models/api/cycle"
)

type cycleApiController struct {
	controllers.BaseAPIController
}

func InitCycleApiRouters(app *fiber.App) {
	controller := cycleApiController{}
	app.Route("cycles", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.changeStatus)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Create a cycle
// @Tags Cycles
// @Description Provision a new inspection cycle for the current technician
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=cycleapimodels.CycleView}
// @Failure 401
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles [post]
func (c *cycleApiController) create(ctx *fiber.Ctx) error {
	technicianID := middleware.GetUserID(ctx)
	view, err := cyclehandler.Instance.Create(technicianID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create cycle")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List cycles
// @Tags Cycles
// @Description List all cycles; approvers additionally get the daily stats card
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=cycleapimodels.ListResponse}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles [get]
func (c *cycleApiController) list(ctx *fiber.Ctx) error {
	role := middleware.GetUserRole(ctx)
	resp, err := cyclehandler.Instance.List(role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list cycles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a cycle
// @Tags Cycles
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=cycleapimodels.CycleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/{id} [get]
func (c *cycleApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := cyclehandler.Instance.GetByID(userID, role, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load cycle")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Change cycle status
// @Tags Cycles
// @Description Run one state machine transition (submit, approve, reject)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 cycleapimodels.StatusChangeData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=cycleapimodels.CycleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/{id} [put]
func (c *cycleApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload cycleapimodels.StatusChangeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := cyclehandler.Instance.ChangeStatus(userID, role, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change cycle status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Delete a cycle
// @Tags Cycles
// @Description Approver only; removes the cycle together with its entries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/{id} [delete]
func (c *cycleApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = cyclehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete cycle")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
