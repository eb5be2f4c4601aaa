// Package service provides the service registry that routes tool calls to
// providers.
//
// Tool IDs have the form "<service>.<tool>"; the prefix selects the provider.
// Routing failures (malformed ID, unknown service, cancelled context) return
// an error wrapping ErrInvalidToolID, ErrServiceNotFound or the context
// error. Tool failures come back as a Result with Success=false.
//
// Discovery scores services by keyword overlap with the intent:
//   - service ID or name: 10
//   - description word: 5
//   - capability: 3
//   - category: 2
//   - tool name: 1
//
// Example Usage:
//
//	registry := service.NewRegistry().WithLogger(logger).WithMetrics(metrics)
//	registry.Register(opn.NewProvider())
//	services := registry.Discover("logarithm", 5)
//	result, err := registry.Execute(ctx, "opn.ln", params, appCtx)
package service
