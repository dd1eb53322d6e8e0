package namespace

import (
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

type handlerFunc func(e *ns.Engine, params map[string]interface{}) (*types.Result, error)

var handlers = map[string]handlerFunc{
	"ls":     list,
	"cd":     changeDirectory,
	"pwd":    currentDirectory,
	"mkdir":  makeDirectory,
	"touch":  createFile,
	"cat":    readFile,
	"write":  writeFile,
	"rm":     remove,
	"chmod":  changePermissions,
	"find":   find,
	"exists": exists,
	"stat":   details,
	"reset":  reset,
}

func list(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := optionalString(params, "path", "")
	if err != nil {
		return nil, err
	}
	entries, err := e.ListDirectory(path)
	if err != nil {
		return nil, err
	}
	return success(map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

func changeDirectory(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	cwd, err := e.ChangeDirectory(path)
	if err != nil {
		return nil, err
	}
	return mutated(e, map[string]interface{}{"path": cwd})
}

func currentDirectory(e *ns.Engine, _ map[string]interface{}) (*types.Result, error) {
	return success(map[string]interface{}{"path": e.GetCurrentDirectory()})
}

func makeDirectory(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	if err := e.MakeDirectory(path); err != nil {
		return nil, err
	}
	return mutated(e, map[string]interface{}{"path": path, "created": true})
}

func createFile(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	content, err := optionalString(params, "content", "")
	if err != nil {
		return nil, err
	}
	if err := e.CreateFile(path, content); err != nil {
		return nil, err
	}
	return mutated(e, map[string]interface{}{"path": path, "size": len(content)})
}

func readFile(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	content, err := e.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return success(map[string]interface{}{"content": content, "size": len(content)})
}

func writeFile(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	content, err := presentString(params, "content")
	if err != nil {
		return nil, err
	}
	if err := e.WriteFile(path, content); err != nil {
		return nil, err
	}
	return mutated(e, map[string]interface{}{"path": path, "size": len(content)})
}

func remove(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	recursive, err := optionalBool(params, "recursive")
	if err != nil {
		return nil, err
	}
	if err := e.Remove(path, recursive); err != nil {
		return nil, err
	}
	return mutated(e, map[string]interface{}{
		"path":    path,
		"removed": true,
		"cwd":     e.GetCurrentDirectory(),
	})
}

func changePermissions(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	mode, err := requiredString(params, "mode")
	if err != nil {
		return nil, err
	}
	symbolic, err := e.ChangePermissions(path, mode)
	if err != nil {
		return nil, err
	}
	return mutated(e, map[string]interface{}{"path": path, "permissions": symbolic})
}

func find(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	start, err := optionalString(params, "path", "")
	if err != nil {
		return nil, err
	}
	pattern, err := requiredString(params, "pattern")
	if err != nil {
		return nil, err
	}
	matches, err := e.FindFiles(start, pattern)
	if err != nil {
		return nil, err
	}
	return success(map[string]interface{}{"matches": matches, "count": len(matches)})
}

func exists(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := requiredString(params, "path")
	if err != nil {
		return nil, err
	}
	return success(map[string]interface{}{"path": path, "exists": e.FileExists(path)})
}

func details(e *ns.Engine, params map[string]interface{}) (*types.Result, error) {
	path, err := optionalString(params, "path", "")
	if err != nil {
		return nil, err
	}
	d, err := e.GetFileDetails(path)
	if err != nil {
		return nil, err
	}
	return success(map[string]interface{}{"details": d})
}

func reset(e *ns.Engine, _ map[string]interface{}) (*types.Result, error) {
	saveErr := e.Reset()
	data := map[string]interface{}{"cwd": e.GetCurrentDirectory()}
	if saveErr != nil {
		data["persist_error"] = saveErr.Error()
	}
	return success(data)
}
