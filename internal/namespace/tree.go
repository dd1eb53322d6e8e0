package namespace

import (
	"sort"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/paths"
)

// Tree owns the root directory and resolves canonical paths to nodes.
// Lookups are read-only; callers mutate through the returned nodes.
type Tree struct {
	root *Node
}

// NewTree wraps an existing root directory.
func NewTree(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the root directory.
func (t *Tree) Root() *Node {
	return t.root
}

// Lookup resolves a canonical absolute path. It fails with NotADirectory naming
// the offending segment when an intermediate component is a file, and with
// NotFound naming the first missing component.
func (t *Tree) Lookup(absPath string) (*Node, error) {
	return t.walk(paths.Components(absPath))
}

// ParentAndName resolves the directory that holds absPath and the final
// component name. The root has no parent.
func (t *Tree) ParentAndName(absPath string) (*Node, string, error) {
	parts := paths.Components(absPath)
	if len(parts) == 0 {
		return nil, "", newError(KindNoParent, paths.Root)
	}

	parent, err := t.walk(parts[:len(parts)-1])
	if err != nil {
		return nil, "", err
	}
	if !parent.IsDir() {
		return nil, "", newError(KindNotADirectory, parts[len(parts)-2])
	}
	return parent, parts[len(parts)-1], nil
}

func (t *Tree) walk(parts []string) (*Node, error) {
	node := t.root
	for i, name := range parts {
		if !node.IsDir() {
			return nil, newError(KindNotADirectory, parts[i-1])
		}
		child, ok := node.Children[name]
		if !ok {
			return nil, newError(KindNotFound, name)
		}
		node = child
	}
	return node, nil
}

// WalkFunc is called for every descendant visited by Walk.
type WalkFunc func(path, name string, node *Node) error

// Walk visits every descendant of dir depth-first, in name order. dirPath is
// the canonical path of dir and is used to build child paths. Returning an
// error from fn stops the walk.
func (t *Tree) Walk(dir *Node, dirPath string, fn WalkFunc) error {
	for _, name := range sortedNames(dir) {
		child := dir.Children[name]
		childPath := paths.Child(dirPath, name)
		if err := fn(childPath, name, child); err != nil {
			return err
		}
		if child.IsDir() {
			if err := t.Walk(child, childPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedNames(dir *Node) []string {
	names := make([]string, 0, len(dir.Children))
	for name := range dir.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
