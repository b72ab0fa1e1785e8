package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"inspection-tools-backend/controllers"
	usershandler "inspection-tools-backend/lib/users"
	"inspection-tools-backend/middleware"
	apimodels "inspection-tools-backend/models/api"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Get("profile", controller.get)
}

// @Summary Current user profile
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := usershandler.Instance.GetByID(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
