// Package main is the entry point for the OPN computation server.
//
// The server exposes the opposite number pair algebra and function
// library as tools behind a small JSON API:
//
//	GET  /                   service info
//	GET  /health             liveness and metrics snapshot
//	GET  /services           registered services
//	POST /services/discover  relevance search over services
//	POST /services/execute   run a tool, e.g. {"tool_id":"opn.add","params":{...}}
//	GET  /metrics            Prometheus exposition
//
// Configuration:
//   - Environment variables (PORT, HOST, LOG_LEVEL, RATE_LIMIT_RPS, ...)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 8000
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
