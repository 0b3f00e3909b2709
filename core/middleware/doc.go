// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Assigns a Request ID (RayID) to every incoming request, storing it in the
//     context locals and echoing it in the X-Ray-ID response header.
//   - RequestLog: Logs the start and outcome of every request through Zap, tagged with the RayID.
//   - Metrics: Records Prometheus request counters, latency histograms and in-flight gauges,
//     and exposes the registry for scraping.
//
// Registration order matters: RayID must run first so later middleware can read it.
package middleware
