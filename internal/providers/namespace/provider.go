package namespace

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/monitoring"
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

// ServiceID is the tool prefix this provider answers to.
const ServiceID = "namespace"

// Provider exposes a namespace engine as tools. The engine is not
// synchronized, so every call runs under mu.
type Provider struct {
	mu      sync.Mutex
	engine  *ns.Engine
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithMetrics records per-tool call counts, durations and failures.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(p *Provider) { p.metrics = m }
}

// WithLogger sets the logger for tool failures.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider wraps engine. The provider takes ownership; callers must not
// use the engine directly afterwards.
func NewProvider(engine *ns.Engine, opts ...Option) *Provider {
	p := &Provider{
		engine: engine,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          ServiceID,
		Name:        "Namespace Service",
		Description: "Virtual hierarchical filesystem with a working directory and persistent state",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"change_directory",
			"create_directory",
			"create_file",
			"read_file",
			"write_file",
			"remove",
			"change_permissions",
			"find",
			"exists",
			"details",
			"reset",
		},
		Tools: tools(),
	}
}

// Execute runs a namespace tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	op := strings.TrimPrefix(toolID, ServiceID+".")
	handler, ok := handlers[op]
	if !ok || op == toolID {
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
	if params == nil {
		params = map[string]interface{}{}
	}

	timer := monitoring.NewTimer(p.metrics, ServiceID, op)

	p.mu.Lock()
	result, err := handler(p.engine, params)
	p.mu.Unlock()

	if err != nil {
		kind := kindOf(err)
		if kind == "" {
			timer.Fail("internal")
		} else {
			timer.Fail(kind)
		}
		p.logger.Debug("Namespace tool failed",
			zap.String("tool", toolID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return failureWithKind(err, kind)
	}
	timer.Stop("success")
	return result, nil
}

// Engine runs fn with exclusive access to the engine. Used by hosts that need
// operations outside the tool surface, such as snapshot export.
func (p *Provider) Engine(fn func(e *ns.Engine) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.engine)
}
