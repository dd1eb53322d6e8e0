// Package paths resolves path expressions for the virtual namespace.
//
// All functions are pure: they never consult the tree, only the path strings and
// the cursor they are given. A canonical absolute path starts with "/" and contains
// no ".", ".." or empty segments.
//
// # Directory Structure
//
//	/
//	├── bin/
//	├── etc/
//	├── home/
//	│   └── user/      (home, target of "~")
//	└── tmp/
//
// # Usage
//
//	import "github.com/GriffinCanCode/AgentOS/vfs/internal/shared/paths"
//
//	abs := paths.Resolve("../logs", "/home/user", paths.Home) // "/home/logs"
//	parts := paths.Components(abs)                             // ["home", "logs"]
package paths
