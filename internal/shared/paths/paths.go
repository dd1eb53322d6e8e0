package paths

import "strings"

// Separator between path components.
const Separator = "/"

// Bootstrap mount points
const (
	Root = "/"
	Bin  = "/bin"
	Etc  = "/etc"
	Tmp  = "/tmp"
)

// Home is the default home directory that "~" expands to.
const Home = "/home/user"

const (
	current = "."
	parent  = ".."
	tilde   = "~"
)

// ExpandHome replaces a leading "~" or "~/" with home. Other uses of "~"
// (for example "~alice" or "a/~") are left alone.
func ExpandHome(path, home string) string {
	if path == tilde {
		return home
	}
	if strings.HasPrefix(path, tilde+Separator) {
		return home + path[len(tilde):]
	}
	return path
}

// IsAbsolute reports whether path starts at the root.
func IsAbsolute(path string) bool {
	return strings.HasPrefix(path, Separator)
}

// ToAbsolute joins a relative path onto cursor. Absolute paths are normalized
// against the root so the result is always canonical.
func ToAbsolute(path, cursor string) string {
	if IsAbsolute(path) {
		return Join(Root, path)
	}
	return Join(cursor, path)
}

// Join applies relative to base one component at a time. "." is skipped, ".."
// pops the last accumulated component (a no-op at the root) and anything else
// is appended.
func Join(base, relative string) string {
	parts := Components(base)
	for _, c := range strings.Split(relative, Separator) {
		switch c {
		case "", current:
		case parent:
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, c)
		}
	}
	return FromComponents(parts)
}

// Components splits an absolute path into its non-empty components.
// The root path yields an empty slice.
func Components(path string) []string {
	raw := strings.Split(path, Separator)
	parts := make([]string, 0, len(raw))
	for _, c := range raw {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return parts
}

// FromComponents builds a canonical absolute path.
func FromComponents(parts []string) string {
	return Separator + strings.Join(parts, Separator)
}

// Resolve turns a user-supplied path expression into a canonical absolute path.
// An empty expression resolves to the cursor.
func Resolve(path, cursor, home string) string {
	if path == "" {
		return Join(Root, cursor)
	}
	return ToAbsolute(ExpandHome(path, home), cursor)
}

// Child returns the path of name inside dir.
func Child(dir, name string) string {
	if dir == Root {
		return Root + name
	}
	return dir + Separator + name
}

// Base returns the last component of a canonical path, or "/" for the root.
func Base(path string) string {
	parts := Components(path)
	if len(parts) == 0 {
		return Root
	}
	return parts[len(parts)-1]
}

// Dir returns the parent of a canonical path. The parent of the root is the root.
func Dir(path string) string {
	parts := Components(path)
	if len(parts) == 0 {
		return Root
	}
	return FromComponents(parts[:len(parts)-1])
}

// IsWithin reports whether path equals ancestor or lies beneath it.
func IsWithin(path, ancestor string) bool {
	if ancestor == Root || path == ancestor {
		return true
	}
	return strings.HasPrefix(path, ancestor+Separator)
}

// StandardDirectories returns the directories created for a fresh namespace.
func StandardDirectories(home string) []string {
	return []string{home, Bin, Etc, Tmp}
}
