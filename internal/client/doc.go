// Package client talks to a running namespace server.
//
// Requests go through three layers: a token bucket (optional), a circuit
// breaker that stops calling a server which keeps failing, and a retrying
// transport that backs off on connection errors, 429 and 5xx responses.
// Tool failures are not transport failures: Execute returns them as a Result
// with Success false.
//
// Example Usage:
//
//	c := client.New("http://localhost:8000", client.DefaultConfig(), logger)
//	result, err := c.Execute(ctx, "namespace.mkdir", map[string]interface{}{"path": "/tmp/x"}, "")
package client
