package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/api/middleware"
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	nsprovider "github.com/GriffinCanCode/AgentOS/vfs/internal/providers/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/service"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/utils"
)

type failingPersister struct{}

func (failingPersister) Save(ns.State) error { return errors.New("disk full") }
func (failingPersister) Load() (*ns.State, error) { return nil, nil }

func setupRouter(t *testing.T, opts ...ns.Option) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := nsprovider.NewProvider(ns.New(opts...))
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(provider))

	h := NewHandlers(registry, provider, StorageInfo{Backend: "memory", Key: "vfs.state", Codec: "json", Compression: "none"}, nil)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)
	router.GET("/namespace/snapshot", h.Snapshot)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRootAndHealth(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", decode(t, w)["status"])

	w = do(router, "GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "/home/user", body["namespace"].(map[string]interface{})["cwd"])
	persistence := body["persistence"].(map[string]interface{})
	assert.Equal(t, true, persistence["last_save_ok"])
	assert.Equal(t, "memory", persistence["storage"].(map[string]interface{})["backend"])
}

func TestHealthDegradedAfterFailedSave(t *testing.T) {
	router := setupRouter(t, ns.WithPersister(failingPersister{}))

	w := do(router, "POST", "/services/execute", `{"tool_id":"namespace.mkdir","params":{"path":"/tmp/x"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	result := decode(t, w)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "disk full", result["data"].(map[string]interface{})["persist_error"])

	body := decode(t, do(router, "GET", "/health", ""))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "disk full", body["persistence"].(map[string]interface{})["last_save_error"])
}

func TestListServices(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "GET", "/services", "")
	require.Equal(t, http.StatusOK, w.Code)
	services := decode(t, w)["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, nsprovider.ServiceID, services[0].(map[string]interface{})["id"])

	w = do(router, "GET", "/services?category=system", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["services"])

	w = do(router, "GET", "/services?category=Bad!", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscoverServices(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "POST", "/services/discover", `{"query":"create a directory in the namespace"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["services"])

	w = do(router, "POST", "/services/discover", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "POST", "/services/execute", `{"tool_id":"namespace.touch","params":{"path":"notes.txt","content":"hi"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = do(router, "POST", "/services/execute", `{"tool_id":"namespace.cat","params":{"path":"~/notes.txt"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	result := decode(t, w)
	assert.Equal(t, "hi", result["data"].(map[string]interface{})["content"])

	w = do(router, "POST", "/services/execute", `{"tool_id":"namespace.cat","params":{"path":"/missing"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	result = decode(t, w)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "not_found", result["data"].(map[string]interface{})["kind"])
}

func TestExecuteServiceErrors(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"missing tool id", `{"params":{}}`, http.StatusBadRequest},
		{"bad characters", `{"tool_id":"namespace/ls"}`, http.StatusBadRequest},
		{"no dot", `{"tool_id":"namespace"}`, http.StatusBadRequest},
		{"bad app id", `{"tool_id":"namespace.ls","app_id":"a b"}`, http.StatusBadRequest},
		{"unknown service", `{"tool_id":"kernel.ls"}`, http.StatusNotFound},
		{"nul in path", `{"tool_id":"namespace.cat","params":{"path":"/tmp/a\u0000b"}}`, http.StatusBadRequest},
		{"path too long", `{"tool_id":"namespace.ls","params":{"path":"/` + strings.Repeat("a", utils.MaxPathLength) + `"}}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, "POST", "/services/execute", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSnapshot(t *testing.T) {
	router := setupRouter(t)

	w := do(router, "GET", "/namespace/snapshot", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	body := decode(t, w)
	assert.Equal(t, "/home/user", body["currentPath"])
	assert.NotNil(t, body["fileSystem"])

	w = do(router, "GET", "/namespace/snapshot?format=yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/yaml"))
	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/home/user", doc["currentPath"])

	w = do(router, "GET", "/namespace/snapshot?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
