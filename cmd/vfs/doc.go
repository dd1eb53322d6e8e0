// Package main is the entry point for the AgentOS virtual namespace.
//
// The binary hosts the namespace over HTTP or drives it directly from the
// shell against the same persisted state:
//
//	# Serve the HTTP API (services, snapshot, metrics)
//	vfs serve --port 8000
//
//	# Run one tool and print the JSON result
//	vfs exec mkdir path=/tmp/work
//	vfs exec touch path=notes.txt content="hello"
//	vfs exec find --params '{"path":"/","pattern":"*.txt"}'
//
//	# Dump the persisted tree
//	vfs snapshot --format yaml
//
// Configuration:
//   - Environment variables (VFS_STORE, VFS_STORE_PATH, LOG_LEVEL, ...)
//   - CLI flags (override env vars)
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown of serve
package main
