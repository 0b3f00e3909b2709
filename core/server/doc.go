// Package server assembles and configures the HTTP server.
//
// New wires the global middleware (RayID, request logging, metrics), the optional
// /swagger and /metrics endpoints, every feature registered on the loader.Manager, and
// finally a catch-all route answering 404 "Route not found".
//
// # Error Envelope
//
// Failures share one JSON shape, written via Fail:
//
//	{"success": false, "error": "<short code>", "message": "<human text>"}
//
// Errors returned from handlers (e.g. fiber.ErrRequestEntityTooLarge) are rendered
// in the same envelope by the application's ErrorHandler.
//
// # Configuration
//
// The Config struct defines the listen port, body size limit, and toggles for the
// documentation and metrics endpoints.
package server
