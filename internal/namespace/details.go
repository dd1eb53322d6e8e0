package namespace

import (
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/perms"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name        string    `json:"name"`
	Type        NodeType  `json:"type"`
	Permissions string    `json:"permissions"`
	Size        int64     `json:"size"`
	Modified    time.Time `json:"modified"`
}

func newEntry(name string, n *Node) Entry {
	return Entry{
		Name:        name,
		Type:        n.Type,
		Permissions: n.Permissions,
		Size:        n.Size(),
		Modified:    n.Modified,
	}
}

// FileDetails describes a single node.
type FileDetails struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Type        NodeType  `json:"type"`
	Permissions string    `json:"permissions"`
	Mode        string    `json:"mode"`
	Size        int64     `json:"size"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	IsDirectory bool      `json:"is_directory"`
	MimeType    string    `json:"mime_type,omitempty"`
}

func newFileDetails(path string, n *Node) *FileDetails {
	d := &FileDetails{
		Name:        paths.Base(path),
		Path:        path,
		Type:        n.Type,
		Permissions: n.Permissions,
		Size:        n.Size(),
		Created:     n.Created,
		Modified:    n.Modified,
		IsDirectory: n.IsDir(),
	}
	if mode, err := perms.SymbolicToOctal(n.Permissions); err == nil {
		d.Mode = mode
	}
	if !n.IsDir() {
		d.MimeType = mimetype.Detect([]byte(n.Content)).String()
	}
	return d
}
