/*
Package monitoring provides Prometheus metrics for the namespace service.

# Overview

Metrics are registered against a caller-supplied prometheus.Registerer so
tests and embedded hosts can use an isolated registry.

# Features

- HTTP request metrics (latency, throughput, size)
- Namespace tool metrics (calls, duration, failures by error kind)
- Persistence metrics (saves, failures, blob size, save latency)
- Uptime

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	timer := monitoring.NewTimer(metrics, "namespace", "mkdir")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
