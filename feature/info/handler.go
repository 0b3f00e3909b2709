package info

import "github.com/gofiber/fiber/v2"

// Version is the API version reported by the documentation endpoint.
const Version = "1.0.0"

// Document describes the service to API consumers.
type Document struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Examples  map[string]string `json:"examples"`
}

// NewDocument returns the service description.
func NewDocument() Document {
	return Document{
		Message: "HEX to RGB Conversion API",
		Version: Version,
		Endpoints: map[string]string{
			"GET /api/convert/hex-to-rgb":  "Convert HEX to RGB (query param)",
			"POST /api/convert/hex-to-rgb": "Convert HEX to RGB (body param)",
		},
		Examples: map[string]string{
			"get":  "/api/convert/hex-to-rgb?hex=FF5733",
			"post": `POST /api/convert/hex-to-rgb with body: { "hex": "FF5733" }`,
		},
	}
}

// Handler serves the documentation endpoint.
type Handler struct {
	doc Document
}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{doc: NewDocument()}
}

// RegisterRoutes registers the documentation route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
}

// HandleIndex returns the service description.
// @Summary API Documentation
// @Description Returns service metadata, available endpoints and usage examples.
// @Tags info
// @Produce json
// @Success 200 {object} Document
// @Router / [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	return c.JSON(h.doc)
}
