package server

import (
	"errors"

	"color-api/core/loader"
	"color-api/core/logger"
	"color-api/core/middleware/metrics"
	"color-api/core/middleware/rayid"
	"color-api/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "color-api/docs/swagger"
)

// ErrRouteNotFound is the error code returned for unmatched routes.
const ErrRouteNotFound = "Route not found"

// New builds the Fiber application: middleware, optional documentation and metrics
// endpoints, every enabled feature, and a catch-all 404 route.
func New(cfg Config, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.EffectiveBodyLimit(),
		ErrorHandler:          errorHandler(logg),
	})

	// RayID must be first so everything after it can be correlated.
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))
	if cfg.Metrics {
		app.Use(metrics.New())
		app.Get("/metrics", metrics.Handler())
	}
	if cfg.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	app.Use(func(c *fiber.Ctx) error {
		return Fail(c, fiber.StatusNotFound, ErrRouteNotFound, "")
	})

	return app, nil
}

// errorHandler renders errors that escape handlers in the failure envelope.
func errorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			logger.WithRayID(logg, c).Error("Unhandled error", zap.Error(err))
		}

		if code == fiber.StatusNotFound {
			return Fail(c, code, ErrRouteNotFound, "")
		}
		return Fail(c, code, message, "")
	}
}
