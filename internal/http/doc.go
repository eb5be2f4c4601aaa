// Package http provides the HTTP handlers for the OPN REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//
// Tool failures (domain errors, singular divisors, bad parameters) are
// returned with status 200 and "success": false; non-2xx statuses are
// reserved for malformed requests and routing failures.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, logger)
//	router.POST("/services/execute", handlers.ExecuteService)
//
// Request:
//
//	{"tool_id": "opn.multiply", "params": {"x": [1, 0], "y": {"a": 0, "b": -1}}}
//
// Response:
//
//	{"success": true, "data": {"result": {"a": 1, "b": 0}, "text": "(1, 0)"},
//	 "tool_id": "opn.multiply", "request_id": "req_01J..."}
package http
