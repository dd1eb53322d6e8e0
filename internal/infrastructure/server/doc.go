// Package server assembles the namespace service.
//
// Startup order:
//  1. Build the logger from configuration
//  2. Create a private Prometheus registry and the service metrics
//  3. Open the configured store (memory, file or badger)
//  4. Restore the namespace engine through the persistence adapter
//  5. Register the namespace provider with the service registry
//  6. Install middleware (recovery, request IDs, metrics, CORS, rate limiting)
//  7. Register routes and serve until the context is cancelled
//
// OpenNamespace performs steps 3 to 5 without HTTP and is shared with the CLI.
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Close()
//	err = srv.Run(ctx)
package server
