package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/api/middleware"
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/persistence"
	nsprovider "github.com/GriffinCanCode/AgentOS/vfs/internal/providers/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/service"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/utils"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

const (
	defaultDiscoverLimit = 5
	maxDiscoverLimit     = 50
	maxQueryLength       = 1000
)

// StorageInfo describes the persistence backend for health output.
type StorageInfo struct {
	Backend     string `json:"backend"`
	Key         string `json:"key"`
	Codec       string `json:"codec"`
	Compression string `json:"compression"`
}

// Handlers contains all HTTP handlers
type Handlers struct {
	registry  *service.Registry
	namespace *nsprovider.Provider
	storage   StorageInfo
	logger    *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, namespace *nsprovider.Provider, storage StorageInfo, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry:  registry,
		namespace: namespace,
		storage:   storage,
		logger:    logger,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "AgentOS VFS",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	var cwd string
	var saveErr error
	_ = h.namespace.Engine(func(e *ns.Engine) error {
		cwd = e.GetCurrentDirectory()
		saveErr = e.LastSaveError()
		return nil
	})

	status := "healthy"
	persistenceInfo := gin.H{"storage": h.storage, "last_save_ok": saveErr == nil}
	if saveErr != nil {
		status = "degraded"
		persistenceInfo["last_save_error"] = saveErr.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           status,
		"service_registry": h.registry.Stats(),
		"namespace":        gin.H{"cwd": cwd},
		"persistence":      persistenceInfo,
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateCategory(categoryStr, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateString(req.Query, "query", 1, maxQueryLength, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}
	if limit > maxDiscoverLimit {
		limit = maxDiscoverLimit
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": h.registry.Discover(req.Query, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AppID != nil {
		if err := utils.ValidateID(*req.AppID, "app_id", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if path, ok := req.Params["path"].(string); ok {
		if err := utils.ValidatePath(path, "path"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ctx := &types.Context{
		AppID:     req.AppID,
		RequestID: middleware.GetRequestID(c),
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrInvalidToolID):
			status = http.StatusBadRequest
		default:
			h.logger.Error("Tool execution failed",
				zap.String("tool_id", req.ToolID),
				zap.String("request_id", ctx.RequestID),
				zap.Error(err),
			)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Snapshot dumps the live namespace as JSON, YAML or TOML.
func (h *Handlers) Snapshot(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	codec, err := persistence.CodecByName(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var data []byte
	err = h.namespace.Engine(func(e *ns.Engine) error {
		var exportErr error
		data, exportErr = persistence.Export(e.State(), codec)
		return exportErr
	})
	if err != nil {
		h.logger.Error("Snapshot export failed", zap.String("format", format), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, contentType(codec), data)
}

func contentType(codec persistence.Codec) string {
	switch codec.Name() {
	case "yaml":
		return "application/yaml; charset=utf-8"
	case "toml":
		return "application/toml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}
