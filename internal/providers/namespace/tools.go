package namespace

import "github.com/GriffinCanCode/AgentOS/vfs/internal/types"

var (
	pathParam         = types.Parameter{Name: "path", Type: "string", Description: "Path (absolute, relative, or starting with ~)", Required: true}
	optionalPathParam = types.Parameter{Name: "path", Type: "string", Description: "Path (defaults to the current directory)", Required: false}
)

func tools() []types.Tool {
	return []types.Tool{
		{
			ID:          "namespace.ls",
			Name:        "List Directory",
			Description: "List the children of a directory, sorted by name",
			Parameters:  []types.Parameter{optionalPathParam},
			Returns:     "array",
		},
		{
			ID:          "namespace.cd",
			Name:        "Change Directory",
			Description: "Move the working directory and return its canonical path",
			Parameters:  []types.Parameter{pathParam},
			Returns:     "string",
		},
		{
			ID:          "namespace.pwd",
			Name:        "Current Directory",
			Description: "Return the working directory",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
		{
			ID:          "namespace.mkdir",
			Name:        "Make Directory",
			Description: "Create a single directory; the parent must exist",
			Parameters:  []types.Parameter{pathParam},
			Returns:     "boolean",
		},
		{
			ID:          "namespace.touch",
			Name:        "Create File",
			Description: "Create a file, or replace the content of an existing one",
			Parameters: []types.Parameter{
				pathParam,
				{Name: "content", Type: "string", Description: "Initial content (default empty)", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "namespace.cat",
			Name:        "Read File",
			Description: "Return a file's content",
			Parameters:  []types.Parameter{pathParam},
			Returns:     "string",
		},
		{
			ID:          "namespace.write",
			Name:        "Write File",
			Description: "Replace a file's content, creating it if absent; permissions are kept",
			Parameters: []types.Parameter{
				pathParam,
				{Name: "content", Type: "string", Description: "New content", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "namespace.rm",
			Name:        "Remove",
			Description: "Remove a file or directory",
			Parameters: []types.Parameter{
				pathParam,
				{Name: "recursive", Type: "boolean", Description: "Remove non-empty directories", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "namespace.chmod",
			Name:        "Change Permissions",
			Description: "Set permissions from octal (755) or symbolic (rwxr-xr-x) form",
			Parameters: []types.Parameter{
				pathParam,
				{Name: "mode", Type: "string", Description: "Octal or symbolic mode", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "namespace.find",
			Name:        "Find",
			Description: "Recursively find entries whose name matches a glob pattern",
			Parameters: []types.Parameter{
				optionalPathParam,
				{Name: "pattern", Type: "string", Description: "Name pattern; * and ? are wildcards", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "namespace.exists",
			Name:        "Exists",
			Description: "Check whether a path resolves to a file or directory",
			Parameters:  []types.Parameter{pathParam},
			Returns:     "boolean",
		},
		{
			ID:          "namespace.stat",
			Name:        "File Details",
			Description: "Describe a file or directory",
			Parameters:  []types.Parameter{optionalPathParam},
			Returns:     "object",
		},
		{
			ID:          "namespace.reset",
			Name:        "Reset",
			Description: "Discard the tree and rebuild the default layout",
			Parameters:  []types.Parameter{},
			Returns:     "boolean",
		},
	}
}
