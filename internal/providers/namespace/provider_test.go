package namespace

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/monitoring"
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/service"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

type brokenPersister struct{}

func (brokenPersister) Save(ns.State) error { return errors.New("store offline") }
func (brokenPersister) Load() (*ns.State, error) { return nil, nil }

func newProvider(t *testing.T, opts ...Option) *Provider {
	t.Helper()
	return NewProvider(ns.New(), opts...)
}

func run(t *testing.T, p *Provider, tool string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), "namespace."+tool, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func ok(t *testing.T, p *Provider, tool string, params map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := run(t, p, tool, params)
	require.True(t, result.Success, "%s failed: %v", tool, result.Error)
	return result.Data
}

func fails(t *testing.T, p *Provider, tool string, params map[string]interface{}, kind string) {
	t.Helper()
	result := run(t, p, tool, params)
	require.False(t, result.Success, "%s should fail", tool)
	require.NotNil(t, result.Error)
	assert.Equal(t, kind, result.Data["kind"], *result.Error)
}

func TestDefinitionListsEveryTool(t *testing.T) {
	def := newProvider(t).Definition()
	assert.Equal(t, ServiceID, def.ID)
	assert.Equal(t, types.CategoryFilesystem, def.Category)
	require.Len(t, def.Tools, len(handlers))

	for _, tool := range def.Tools {
		_, exists := handlers[tool.ID[len(ServiceID)+1:]]
		assert.True(t, exists, tool.ID)
	}
}

func TestCreateAndRead(t *testing.T) {
	p := newProvider(t)

	ok(t, p, "touch", map[string]interface{}{"path": "/home/user/note.txt", "content": "hello"})
	data := ok(t, p, "cat", map[string]interface{}{"path": "/home/user/note.txt"})
	assert.Equal(t, "hello", data["content"])
	assert.Equal(t, 5, data["size"])
}

func TestDirectoryFlow(t *testing.T) {
	p := newProvider(t)

	data := ok(t, p, "cd", map[string]interface{}{"path": "/home/user"})
	assert.Equal(t, "/home/user", data["path"])

	ok(t, p, "mkdir", map[string]interface{}{"path": "logs"})
	fails(t, p, "mkdir", map[string]interface{}{"path": "logs"}, string(ns.KindAlreadyExists))

	data = ok(t, p, "ls", map[string]interface{}{"path": "."})
	entries := data["entries"].([]ns.Entry)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "logs")

	data = ok(t, p, "pwd", nil)
	assert.Equal(t, "/home/user", data["path"])
}

func TestRemove(t *testing.T) {
	p := newProvider(t)
	ok(t, p, "mkdir", map[string]interface{}{"path": "/a"})
	ok(t, p, "mkdir", map[string]interface{}{"path": "/a/b"})
	ok(t, p, "touch", map[string]interface{}{"path": "/a/b/c.txt"})

	fails(t, p, "rm", map[string]interface{}{"path": "/a"}, string(ns.KindNotEmpty))
	fails(t, p, "rm", map[string]interface{}{"path": "/a", "recursive": "maybe"}, KindInvalidParams)

	ok(t, p, "rm", map[string]interface{}{"path": "/a", "recursive": "true"})
	data := ok(t, p, "exists", map[string]interface{}{"path": "/a/b/c.txt"})
	assert.Equal(t, false, data["exists"])
}

func TestChmodFindStat(t *testing.T) {
	p := newProvider(t)
	ok(t, p, "mkdir", map[string]interface{}{"path": "/x"})
	ok(t, p, "mkdir", map[string]interface{}{"path": "/x/y"})
	ok(t, p, "touch", map[string]interface{}{"path": "/x/a.txt"})
	ok(t, p, "touch", map[string]interface{}{"path": "/x/y/b.txt"})
	ok(t, p, "touch", map[string]interface{}{"path": "/x/y/c.md"})

	data := ok(t, p, "find", map[string]interface{}{"path": "/x", "pattern": "*.txt"})
	assert.Equal(t, []string{"/x/a.txt", "/x/y/b.txt"}, data["matches"])

	data = ok(t, p, "chmod", map[string]interface{}{"path": "/x/a.txt", "mode": "600"})
	assert.Equal(t, "rw-------", data["permissions"])
	fails(t, p, "chmod", map[string]interface{}{"path": "/x/a.txt", "mode": "999"}, string(ns.KindInvalidPermissionFormat))

	data = ok(t, p, "stat", map[string]interface{}{"path": "/x/a.txt"})
	d := data["details"].(*ns.FileDetails)
	assert.Equal(t, "600", d.Mode)
	assert.False(t, d.IsDirectory)
}

func TestParameterValidation(t *testing.T) {
	p := newProvider(t)

	fails(t, p, "cat", nil, KindInvalidParams)
	fails(t, p, "cat", map[string]interface{}{"path": 42}, KindInvalidParams)
	fails(t, p, "write", map[string]interface{}{"path": "/tmp/x"}, KindInvalidParams)
	fails(t, p, "find", map[string]interface{}{}, KindInvalidParams)

	ok(t, p, "write", map[string]interface{}{"path": "/tmp/x", "content": ""})
}

func TestUnknownTool(t *testing.T) {
	p := newProvider(t)

	for _, id := range []string{"namespace.format", "ls", "other.ls"} {
		result, err := p.Execute(context.Background(), id, nil, nil)
		require.NoError(t, err)
		assert.False(t, result.Success, id)
		assert.Contains(t, *result.Error, "unknown tool")
	}
}

func TestPersistErrorIsReported(t *testing.T) {
	p := NewProvider(ns.New(ns.WithPersister(brokenPersister{})))

	data := ok(t, p, "mkdir", map[string]interface{}{"path": "/srv"})
	assert.Equal(t, "store offline", data["persist_error"])

	data = ok(t, p, "exists", map[string]interface{}{"path": "/srv"})
	assert.Equal(t, true, data["exists"])

	data = ok(t, p, "reset", nil)
	assert.Equal(t, "store offline", data["persist_error"])
	assert.Equal(t, "/home/user", data["cwd"])
}

func TestMetricsRecorded(t *testing.T) {
	m := monitoring.NewMetrics(prometheus.NewRegistry())
	p := newProvider(t, WithMetrics(m))

	ok(t, p, "pwd", nil)
	fails(t, p, "cat", map[string]interface{}{"path": "/nope"}, string(ns.KindNotFound))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues(ServiceID, "pwd", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceErrors.WithLabelValues(ServiceID, "cat", "not_found")))
}

func TestConcurrentCallsThroughRegistry(t *testing.T) {
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(newProvider(t)))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			params := map[string]interface{}{"path": "/tmp/f" + string(rune('a'+i)), "content": "x"}
			result, err := registry.Execute(context.Background(), "namespace.touch", params, nil)
			assert.NoError(t, err)
			assert.True(t, result.Success)
		}(i)
	}
	wg.Wait()

	result, err := registry.Execute(context.Background(), "namespace.ls", map[string]interface{}{"path": "/tmp"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Data["count"])
}
