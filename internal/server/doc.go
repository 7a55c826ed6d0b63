// Package server wires the HTTP surface: the analysis API, the WebSocket
// stream entry point, health probes and Prometheus metrics, all on echo.
//
// Handlers stay thin. Batch processing, aggregation and alerting live in
// their own packages; handlers translate HTTP into calls against them and
// map failures through the structured error middleware.
package server
