package persistence

import (
	"fmt"
	"time"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/paths"
)

// StateVersion is the blob layout version written by this package.
const StateVersion = 1

// timeLayout is the ISO-8601 form used for created/modified.
const timeLayout = time.RFC3339Nano

type wireState struct {
	Version     int                  `json:"version" yaml:"version" toml:"version"`
	SnapshotID  string               `json:"snapshotId,omitempty" yaml:"snapshotId,omitempty" toml:"snapshotId,omitempty"`
	FileSystem  map[string]*wireNode `json:"fileSystem" yaml:"fileSystem" toml:"fileSystem"`
	CurrentPath string               `json:"currentPath" yaml:"currentPath" toml:"currentPath"`
}

type wireNode struct {
	Type        string               `json:"type" yaml:"type" toml:"type"`
	Children    map[string]*wireNode `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	Content     *string              `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Permissions string               `json:"permissions" yaml:"permissions" toml:"permissions"`
	Size        *int64               `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Created     string               `json:"created" yaml:"created" toml:"created"`
	Modified    string               `json:"modified" yaml:"modified" toml:"modified"`
}

func encodeState(state namespace.State, snapshotID string) *wireState {
	return &wireState{
		Version:     StateVersion,
		SnapshotID:  snapshotID,
		FileSystem:  map[string]*wireNode{paths.Root: encodeNode(state.Root)},
		CurrentPath: state.CurrentPath,
	}
}

func encodeNode(n *namespace.Node) *wireNode {
	w := &wireNode{
		Type:        string(n.Type),
		Permissions: n.Permissions,
		Created:     n.Created.UTC().Format(timeLayout),
		Modified:    n.Modified.UTC().Format(timeLayout),
	}

	if n.IsDir() {
		w.Children = make(map[string]*wireNode, len(n.Children))
		for name, child := range n.Children {
			w.Children[name] = encodeNode(child)
		}
		return w
	}

	content := n.Content
	size := n.Size()
	w.Content = &content
	w.Size = &size
	return w
}

func decodeState(w *wireState) (*namespace.State, error) {
	if w.Version > StateVersion {
		return nil, fmt.Errorf("unsupported state version %d", w.Version)
	}

	root, ok := w.FileSystem[paths.Root]
	if !ok || root == nil {
		return nil, fmt.Errorf("state has no root directory")
	}

	node, err := decodeNode(root, paths.Root)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, fmt.Errorf("root is not a directory")
	}

	return &namespace.State{Root: node, CurrentPath: w.CurrentPath}, nil
}

// decodeNode rebuilds a node and its subtree, parsing timestamps at every level.
func decodeNode(w *wireNode, path string) (*namespace.Node, error) {
	created, err := parseTime(w.Created)
	if err != nil {
		return nil, fmt.Errorf("%s: created: %w", path, err)
	}
	modified, err := parseTime(w.Modified)
	if err != nil {
		return nil, fmt.Errorf("%s: modified: %w", path, err)
	}

	n := &namespace.Node{
		Type:        namespace.NodeType(w.Type),
		Permissions: w.Permissions,
		Created:     created,
		Modified:    modified,
	}

	switch n.Type {
	case namespace.TypeDirectory:
		n.Children = make(map[string]*namespace.Node, len(w.Children))
		for name, child := range w.Children {
			if child == nil {
				return nil, fmt.Errorf("%s: empty entry", paths.Child(path, name))
			}
			c, err := decodeNode(child, paths.Child(path, name))
			if err != nil {
				return nil, err
			}
			n.Children[name] = c
		}
	case namespace.TypeFile:
		if w.Content != nil {
			n.Content = *w.Content
		}
	default:
		return nil, fmt.Errorf("%s: unknown node type %q", path, w.Type)
	}

	return n, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
