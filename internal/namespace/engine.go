package namespace

import (
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/perms"
)

// State is the persisted form of an engine: the whole tree plus the cursor.
type State struct {
	Root        *Node
	CurrentPath string
}

// Persister stores and restores engine state. Load returns (nil, nil) when
// nothing has been saved yet.
type Persister interface {
	Save(state State) error
	Load() (*State, error)
}

// Engine is the namespace: one tree and one cursor. It is not safe for
// concurrent use; hosts that share an engine between goroutines must
// serialize calls themselves.
type Engine struct {
	tree      *Tree
	cwd       string
	home      string
	mode      PatternMode
	persister Persister
	logger    *zap.Logger
	now       func() time.Time
	saveErr   error
}

// Option configures an Engine.
type Option func(*Engine)

// WithPersister enables save-after-mutation and restores state on construction.
func WithPersister(p Persister) Option {
	return func(e *Engine) { e.persister = p }
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source for created/modified stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithHome sets the directory "~" expands to and the bootstrap home.
func WithHome(home string) Option {
	return func(e *Engine) {
		if home != "" {
			e.home = paths.Join(paths.Root, home)
		}
	}
}

// WithPatternMode selects how FindFiles interprets patterns.
func WithPatternMode(mode PatternMode) Option {
	return func(e *Engine) { e.mode = mode }
}

// New builds an engine, restoring persisted state when available and falling
// back to the bootstrap tree otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		home:   paths.Home,
		mode:   PatternLite,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.restore() {
		e.bootstrap()
	}
	return e
}

func (e *Engine) restore() bool {
	if e.persister == nil {
		return false
	}

	state, err := e.persister.Load()
	if err != nil {
		e.logger.Warn("Discarding unreadable namespace state", zap.Error(err))
		return false
	}
	if state == nil || state.Root == nil || !state.Root.IsDir() {
		e.logger.Info("No saved namespace state, using bootstrap tree")
		return false
	}

	e.tree = NewTree(state.Root)
	e.cwd = paths.Join(paths.Root, state.CurrentPath)
	if n, err := e.tree.Lookup(e.cwd); err != nil || !n.IsDir() {
		e.cwd = e.fallbackCursor()
		e.logger.Info("Saved cursor no longer valid", zap.String("path", state.CurrentPath), zap.String("cursor", e.cwd))
	}
	return true
}

func (e *Engine) fallbackCursor() string {
	if n, err := e.tree.Lookup(e.home); err == nil && n.IsDir() {
		return e.home
	}
	return paths.Root
}

// Home returns the directory "~" expands to.
func (e *Engine) Home() string {
	return e.home
}

// State returns the live tree and cursor. The returned root is shared with
// the engine; clone it before mutating.
func (e *Engine) State() State {
	return State{Root: e.tree.Root(), CurrentPath: e.cwd}
}

// Save writes the current state through the persister.
func (e *Engine) Save() error {
	if e.persister == nil {
		return nil
	}
	err := e.persister.Save(e.State())
	e.saveErr = err
	return err
}

// LastSaveError returns the error from the most recent save, if any.
func (e *Engine) LastSaveError() error {
	return e.saveErr
}

// persist runs after every successful mutation. Failures are logged and kept
// for LastSaveError; the in-memory change stands.
func (e *Engine) persist(op string) {
	if err := e.Save(); err != nil {
		e.logger.Warn("Failed to persist namespace",
			zap.String("operation", op),
			zap.Error(err),
		)
	}
}

// Reset replaces the tree with a fresh bootstrap tree.
func (e *Engine) Reset() error {
	e.bootstrap()
	return e.Save()
}

func (e *Engine) resolve(path string) string {
	return paths.Resolve(path, e.cwd, e.home)
}

// GetCurrentDirectory returns the cursor.
func (e *Engine) GetCurrentDirectory() string {
	return e.cwd
}

// ListDirectory lists the children of a directory, sorted by name.
// An empty path lists the cursor.
func (e *Engine) ListDirectory(path string) ([]Entry, error) {
	target := e.resolve(path)
	dir, err := e.tree.Lookup(target)
	if err != nil {
		return nil, err
	}
	if !dir.IsDir() {
		return nil, newError(KindNotADirectory, paths.Base(target))
	}

	entries := make([]Entry, 0, len(dir.Children))
	for _, name := range sortedNames(dir) {
		entries = append(entries, newEntry(name, dir.Children[name]))
	}
	return entries, nil
}

// ChangeDirectory moves the cursor and returns its new canonical value.
func (e *Engine) ChangeDirectory(path string) (string, error) {
	target := e.resolve(path)
	node, err := e.tree.Lookup(target)
	if err != nil {
		return "", err
	}
	if !node.IsDir() {
		return "", newError(KindNotADirectory, paths.Base(target))
	}

	e.cwd = target
	e.persist("cd")
	return e.cwd, nil
}

// MakeDirectory creates a single directory. The parent must exist.
func (e *Engine) MakeDirectory(path string) error {
	parent, name, err := e.tree.ParentAndName(e.resolve(path))
	if err != nil {
		return err
	}
	if _, exists := parent.Children[name]; exists {
		return newError(KindAlreadyExists, name)
	}

	parent.Children[name] = NewDirectory(e.now())
	e.persist("mkdir")
	return nil
}

// CreateFile creates or replaces a file. Replacing keeps the original created
// time and permissions and refreshes content and modified.
func (e *Engine) CreateFile(path, content string) error {
	if err := e.upsertFile(path, content); err != nil {
		return err
	}
	e.persist("touch")
	return nil
}

// ReadFile returns a file's content unchanged.
func (e *Engine) ReadFile(path string) (string, error) {
	target := e.resolve(path)
	node, err := e.tree.Lookup(target)
	if err != nil {
		return "", err
	}
	if node.IsDir() {
		return "", newError(KindNotAFile, paths.Base(target))
	}
	return node.Content, nil
}

// WriteFile replaces a file's content, creating the file when absent.
func (e *Engine) WriteFile(path, content string) error {
	if err := e.upsertFile(path, content); err != nil {
		return err
	}
	e.persist("write")
	return nil
}

func (e *Engine) upsertFile(path, content string) error {
	parent, name, err := e.tree.ParentAndName(e.resolve(path))
	if err != nil {
		return err
	}

	now := e.now()
	existing, ok := parent.Children[name]
	if !ok {
		parent.Children[name] = NewFile(content, now)
		return nil
	}
	if existing.IsDir() {
		return newError(KindNotAFile, name)
	}

	existing.Content = content
	existing.Modified = now
	return nil
}

// Remove deletes a node. Non-empty directories need recursive. When the
// removed subtree contains the cursor, the cursor moves to the removed
// node's parent.
func (e *Engine) Remove(path string, recursive bool) error {
	target := e.resolve(path)
	parent, name, err := e.tree.ParentAndName(target)
	if err != nil {
		return err
	}
	node, ok := parent.Children[name]
	if !ok {
		return newError(KindNotFound, name)
	}
	if node.IsDir() && len(node.Children) > 0 && !recursive {
		return newError(KindNotEmpty, name)
	}

	delete(parent.Children, name)
	if paths.IsWithin(e.cwd, target) {
		e.cwd = paths.Dir(target)
	}
	e.persist("rm")
	return nil
}

// ChangePermissions applies an octal ("755") or symbolic ("rwxr-xr-x") mode
// and returns the resulting symbolic string.
func (e *Engine) ChangePermissions(path, mode string) (string, error) {
	node, err := e.tree.Lookup(e.resolve(path))
	if err != nil {
		return "", err
	}

	symbolic, err := perms.Parse(mode)
	if err != nil {
		return "", newError(KindInvalidPermissionFormat, mode)
	}

	node.Permissions = symbolic
	node.Modified = e.now()
	e.persist("chmod")
	return symbolic, nil
}

// FindFiles returns the absolute paths of every descendant of startDir whose
// name matches pattern. Directories and files both match.
func (e *Engine) FindFiles(startDir, pattern string) ([]string, error) {
	start := e.resolve(startDir)
	dir, err := e.tree.Lookup(start)
	if err != nil {
		return nil, err
	}
	if !dir.IsDir() {
		return nil, newError(KindNotADirectory, paths.Base(start))
	}

	match, err := compilePattern(pattern, e.mode)
	if err != nil {
		return nil, err
	}

	matches := []string{}
	err = e.tree.Walk(dir, start, func(path, name string, _ *Node) error {
		if match(name) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// FileExists reports whether path resolves to any node.
func (e *Engine) FileExists(path string) bool {
	_, err := e.tree.Lookup(e.resolve(path))
	return err == nil
}

// GetFileDetails describes a single node.
func (e *Engine) GetFileDetails(path string) (*FileDetails, error) {
	target := e.resolve(path)
	node, err := e.tree.Lookup(target)
	if err != nil {
		return nil, err
	}
	return newFileDetails(target, node), nil
}
