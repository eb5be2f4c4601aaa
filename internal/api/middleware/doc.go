// Package middleware provides the HTTP middleware stack for the OPN server.
//
//   - CORS: cross-origin access via gin-contrib/cors
//   - RateLimit: per-IP token buckets (x/time/rate) with idle eviction
//   - GlobalRateLimit: one bucket shared by all clients
//   - RequestID: X-Request-ID propagation with ULID request IDs
//
// Example Usage:
//
//	router.Use(middleware.RequestID())
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
