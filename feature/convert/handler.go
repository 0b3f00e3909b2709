package convert

import (
	"errors"

	"color-api/core/color"
	"color-api/core/logger"
	"color-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error codes returned in the failure envelope.
const (
	ErrCodeMissingHex  = "Missing hex parameter"
	ErrCodeInvalidHex  = "Invalid hex color code"
	ErrCodeInvalidBody = "Invalid request body"
)

const (
	msgMissingQuery = "Please provide a hex color code in the query string"
	msgMissingBody  = "Please provide a hex color code in the request body"
	msgInvalidHex   = "Please provide a valid hex color code (e.g., FFFFFF or #FFFFFF)"
	msgInvalidBody  = `Please send a JSON body such as {"hex": "FF5733"}`
)

// Request is the body accepted by the POST endpoint.
type Request struct {
	Hex string `json:"hex" form:"hex" xml:"hex" example:"FF5733"`
}

// SuccessResponse is the envelope returned for a successful conversion.
type SuccessResponse struct {
	Success bool    `json:"success" example:"true"`
	Data    *Result `json:"data"`
}

// Handler handles HTTP requests for color conversion.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the conversion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/convert")
	group.Get("/hex-to-rgb", h.HandleQuery)
	group.Post("/hex-to-rgb", h.HandleBody)
}

// HandleQuery converts the hex code given in the query string.
// @Summary Convert HEX to RGB (query)
// @Description Converts a 3 or 6 digit hex color code, with or without a leading #, supplied in the query string.
// @Tags convert
// @Produce json
// @Param hex query string true "Hex color code (e.g. FF5733, #FFF)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} server.ErrorResponse "Missing or invalid hex color code"
// @Router /api/convert/hex-to-rgb [get]
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	return h.respond(c, c.Query("hex"), channelQuery, msgMissingQuery)
}

// HandleBody converts the hex code given in the request body.
// @Summary Convert HEX to RGB (body)
// @Description Converts a 3 or 6 digit hex color code, with or without a leading #, supplied in the request body.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body Request true "Hex color code"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} server.ErrorResponse "Missing or invalid hex color code"
// @Router /api/convert/hex-to-rgb [post]
func (h *Handler) HandleBody(c *fiber.Ctx) error {
	var req Request
	// An empty body carries no candidate; it is not malformed.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.WithRayID(h.service.logger, c).Warn("Unparseable conversion body", zap.Error(err))
			conversionsTotal.WithLabelValues(channelBody, outcomeInvalidBody).Inc()
			return server.Fail(c, fiber.StatusBadRequest, ErrCodeInvalidBody, msgInvalidBody)
		}
	}
	return h.respond(c, req.Hex, channelBody, msgMissingBody)
}

func (h *Handler) respond(c *fiber.Ctx, candidate, channel, missingMessage string) error {
	l := logger.WithRayID(h.service.logger, c).With(zap.String("channel", channel))

	result, err := h.service.Convert(candidate)
	switch {
	case errors.Is(err, ErrMissingHex):
		l.Debug("Conversion rejected: missing hex")
		conversionsTotal.WithLabelValues(channel, outcomeMissing).Inc()
		return server.Fail(c, fiber.StatusBadRequest, ErrCodeMissingHex, missingMessage)
	case errors.Is(err, color.ErrInvalidHex):
		l.Debug("Conversion rejected: invalid hex", zap.String("hex", candidate))
		conversionsTotal.WithLabelValues(channel, outcomeInvalid).Inc()
		return server.Fail(c, fiber.StatusBadRequest, ErrCodeInvalidHex, msgInvalidHex)
	case err != nil:
		return err
	}

	l.Debug("Converted color", zap.String("hex", result.Hex), zap.String("css", result.CSS))
	conversionsTotal.WithLabelValues(channel, outcomeOK).Inc()
	return c.JSON(SuccessResponse{Success: true, Data: result})
}
