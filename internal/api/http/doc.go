// Package http provides the HTTP handlers for the namespace service.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Namespace: /namespace/snapshot?format=json|yaml|toml
//
// Tool failures are reported inside a 200 response with success=false;
// transport-level problems (bad JSON, unknown service, malformed tool ID)
// map to 4xx statuses.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, provider, storageInfo, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
