// Package config provides 12-factor configuration for the namespace service.
//
// Configuration is loaded from environment variables with sensible defaults.
// Command-line flags in cmd/vfs override individual values.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Namespace: Home directory and find pattern mode
//   - Persistence: Store backend, location, key, codec and compression
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - VFS_HOME, VFS_PATTERN_MODE
//   - VFS_STORE, VFS_STORE_PATH, VFS_STATE_KEY, VFS_CODEC, VFS_COMPRESSION
package config
