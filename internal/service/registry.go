package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/opn/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/opn/backend/internal/logging"
	"github.com/GriffinCanCode/opn/backend/internal/types"
)

// DefaultDiscoverLimit applies when Discover is given a non-positive limit.
const DefaultDiscoverLimit = 5

var (
	ErrInvalidToolID   = errors.New("invalid tool ID format")
	ErrServiceNotFound = errors.New("service not found")
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{logger: logging.NewNop()}
}

// WithLogger sets the registry logger
func (r *Registry) WithLogger(logger *logging.Logger) *Registry {
	if logger != nil {
		r.logger = logger.Component("registry")
	}
	return r
}

// WithMetrics enables per-tool metrics
func (r *Registry) WithMetrics(metrics *monitoring.Metrics) *Registry {
	r.metrics = metrics
	return r
}

// Register adds a service provider, replacing any provider with the same ID
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
	r.logger.Info("service registered",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)),
	)
	r.updateGauge()
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
	r.updateGauge()
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services sorted by ID
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	if limit <= 0 {
		limit = DefaultDiscoverLimit
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if score := calculateRelevance(intentLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
		return true
	})

	// Score descending, ID ascending on ties
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool. Routing failures are returned as errors
// alongside a failed Result; tool failures come back as a failed Result
// with a nil error.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return failed(ErrInvalidToolID.Error()), fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		msg := fmt.Sprintf("%s: %s", ErrServiceNotFound, serviceID)
		return failed(msg), fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	if err := ctx.Err(); err != nil {
		return failed(err.Error()), fmt.Errorf("execute %s: %w", toolID, err)
	}

	logger := r.logger
	if appCtx != nil {
		logger = logger.WithRequest(appCtx.RequestID)
	}

	var timer *monitoring.Timer
	if r.metrics != nil {
		timer = monitoring.NewTimer(r.metrics, serviceID, toolID)
	}

	result, err := provider.Execute(ctx, toolID, params, appCtx)

	status := resultStatus(result, err)
	if timer != nil {
		timer.Stop(status)
	}

	switch status {
	case "error":
		logger.Error("tool execution error", zap.String("tool", toolID), zap.Error(err))
		r.recordError(serviceID, toolID, "internal")
	case "failure":
		kind := failureKind(result)
		logger.Debug("tool failed",
			zap.String("tool", toolID),
			zap.String("kind", kind),
			zap.Stringp("error", result.Error),
		)
		r.recordError(serviceID, toolID, kind)
	default:
		logger.Debug("tool executed", zap.String("tool", toolID))
	}

	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) recordError(serviceID, toolID, kind string) {
	if r.metrics != nil {
		r.metrics.RecordToolError(serviceID, toolID, kind)
	}
}

func (r *Registry) updateGauge() {
	if r.metrics == nil {
		return
	}
	count := 0
	r.services.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	r.metrics.SetServicesRegistered(count)
}

func resultStatus(result *types.Result, err error) string {
	switch {
	case err != nil || result == nil:
		return "error"
	case result.Success:
		return "success"
	default:
		return "failure"
	}
}

// failureKind labels a failed Result; results without an error kind are
// parameter or routing failures.
func failureKind(result *types.Result) string {
	if kind, ok := result.Data["kind"].(string); ok && kind != "" {
		return kind
	}
	return "invalid_request"
}

func calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		word = strings.Trim(word, "(),.;:")
		if len(word) > 2 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	// Check tool names
	for _, tool := range service.Tools {
		if name := strings.ToLower(tool.Name); name != "" && strings.Contains(intent, name) {
			score += 1.0
		}
	}

	// Check category
	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func failed(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}
