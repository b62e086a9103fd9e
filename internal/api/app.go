package api

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/essgate/internal/services"
)

// NewApp builds the fiber application with the request middleware stack and
// every route registered. Access logs go to accessLog when it is non-nil.
func NewApp(handler *Handler, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "essgate",
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler,
	})

	app.Use(recover.New())
	if accessLog != nil {
		app.Use(logger.New(logger.Config{Output: accessLog}))
	}
	RegisterRoutes(app, handler)
	return app
}

// ErrorHandler renders errors escaping a handler, recovered panics included,
// in the result shape.
func (handler *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}

	switch status {
	case fiber.StatusNotFound:
		return handler.NotFound(c)
	case fiber.StatusInternalServerError:
		handler.logger.Error(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return handler.respondStatus(c, status, services.Failure(services.MsgInternal))
	default:
		return handler.respondStatus(c, status, services.Failure(services.MsgInvalidInput))
	}
}
