package namespace

import (
	"time"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/perms"
)

// NodeType distinguishes directories from files.
type NodeType string

const (
	TypeDirectory NodeType = "directory"
	TypeFile      NodeType = "file"
)

// Node is a directory or a file. Children is only set on directories and
// Content only matters for files. A node is owned by exactly one parent's
// Children map; nodes carry no back-reference to their parent.
type Node struct {
	Type        NodeType
	Children    map[string]*Node
	Content     string
	Permissions string
	Created     time.Time
	Modified    time.Time
}

// NewDirectory creates an empty directory with default permissions.
func NewDirectory(now time.Time) *Node {
	return &Node{
		Type:        TypeDirectory,
		Children:    make(map[string]*Node),
		Permissions: perms.DirDefault,
		Created:     now,
		Modified:    now,
	}
}

// NewFile creates a file with default permissions.
func NewFile(content string, now time.Time) *Node {
	return &Node{
		Type:        TypeFile,
		Content:     content,
		Permissions: perms.FileDefault,
		Created:     now,
		Modified:    now,
	}
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Type == TypeDirectory
}

// Size is the byte length of a file's content; directories report 0.
func (n *Node) Size() int64 {
	if n.IsDir() {
		return 0
	}
	return int64(len(n.Content))
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	c := *n
	if n.Children != nil {
		c.Children = make(map[string]*Node, len(n.Children))
		for name, child := range n.Children {
			c.Children[name] = child.Clone()
		}
	}
	return &c
}
