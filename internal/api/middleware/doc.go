// Package middleware provides HTTP middleware for the namespace service.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting with idle-client pruning
//   - GlobalRateLimit: One token bucket shared by all clients
//   - RequestID: ULID request IDs in the X-Request-ID header
//
// Example Usage:
//
//	router.Use(middleware.RequestID())
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
