package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/middleware"
	"inspection-tools-backend/models"
	apimodels "inspection-tools-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("record id must be a valid uuid")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	entry := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if name := middleware.GetUserName(ctx); name != "" {
		entry = entry.WithField("user", name)
	}
	return entry
}

// SendError maps the handler error kind to an HTTP status and renders the
// common response envelope.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(message)
	} else {
		logger.WithError(err).Warn(message)
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
