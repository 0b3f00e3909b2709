// Package convert implements the HEX to RGB conversion feature.
//
// A candidate color code is accepted over two channels, validated and decoded by
// core/color, and answered with the normalized hex string, the RGB triple and a CSS
// rendering.
//
// # Components
//
//   - Service: Distinguishes missing input from invalid input and builds the Result.
//   - Handler: Extracts the candidate from the query string or request body and maps
//     service outcomes to response envelopes and status codes.
//   - Feature: Registers the routes with the loader.
//
// # HTTP Endpoints
//
//   - GET  /api/convert/hex-to-rgb?hex=FF5733
//   - POST /api/convert/hex-to-rgb with body {"hex": "FF5733"}
//
// Both answer 200 with {"success": true, "data": {...}} or 400 with the shared
// failure envelope ("Missing hex parameter", "Invalid hex color code" or
// "Invalid request body").
package convert
