package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"inspection-tools-backend/controllers"
	entryhandler "inspection-tools-backend/lib/entry"
	"inspection-tools-backend/middleware"
	apimodels "inspection-tools-backend/models/api"
	entryapimodels "inspection-tools-backend/models/api/entry"
)

type entryApiController struct {
	controllers.BaseAPIController
}

func InitEntryApiRouters(app *fiber.App) {
	controller := entryApiController{}
	app.Route("entries", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.submit)
		})
	})
}

// @Summary Get an entry
// @Tags Entries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=entryapimodels.EntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/entries/{id} [get]
func (c *entryApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := entryhandler.Instance.GetByID(userID, role, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit entry readings
// @Tags Entries
// @Description Overwrite the entry's reading document and mark it completed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 entryapimodels.SubmitData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=entryapimodels.EntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/entries/{id} [put]
func (c *entryApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload entryapimodels.SubmitData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := entryhandler.Instance.SubmitData(userID, role, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit entry readings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
