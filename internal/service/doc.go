// Package service routes tool calls to registered providers.
//
// Tool IDs have the form "service.tool". The registry looks up the provider
// by the service prefix and hands it the full ID.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(namespaceProvider)
//	services := registry.Discover("create directory", 5)
//	result, err := registry.Execute(ctx, "namespace.mkdir", params, appCtx)
package service
