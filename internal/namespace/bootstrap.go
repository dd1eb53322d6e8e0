package namespace

import (
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/paths"
)

// seedFiles are written into a fresh namespace. Keys are relative to home
// unless absolute.
var seedFiles = []struct {
	path    string
	content string
}{
	{"welcome.txt", "Welcome to the virtual filesystem.\nType 'help' to see the available commands.\n"},
	{"notes.md", "# Notes\n\n- ls, cd, mkdir, touch, cat, rm, chmod, find\n"},
	{".profile", "export PATH=/bin\n"},
	{paths.Etc + "/hostname", "agentos\n"},
	{paths.Etc + "/motd", "Have a nice session.\n"},
}

// bootstrap replaces the tree with the default layout and puts the cursor at home.
func (e *Engine) bootstrap() {
	now := e.now()
	e.tree = NewTree(NewDirectory(now))

	for _, dir := range paths.StandardDirectories(e.home) {
		e.mkdirAll(dir)
	}
	for _, f := range seedFiles {
		target := paths.Resolve(f.path, e.home, e.home)
		parent, name, err := e.tree.ParentAndName(target)
		if err != nil {
			continue
		}
		parent.Children[name] = NewFile(f.content, now)
	}

	e.cwd = e.home
}

func (e *Engine) mkdirAll(path string) {
	node := e.tree.Root()
	for _, name := range paths.Components(path) {
		child, ok := node.Children[name]
		if !ok {
			child = NewDirectory(e.now())
			node.Children[name] = child
		}
		if !child.IsDir() {
			return
		}
		node = child
	}
}
