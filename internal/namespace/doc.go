// Package namespace implements the virtual hierarchical namespace: an in-memory
// tree of directories and files, a working-directory cursor, and the operations
// a shell needs on top of them.
//
// Paths passed to the Engine may be absolute, relative to the cursor, or start
// with "~". They are canonicalized by the paths package before the Tree resolves
// them. Every successful mutation (including cd) is followed by a save through
// the configured Persister; a failed save is logged and does not undo the
// mutation.
//
// Errors are *Error values carrying a Kind and the offending name:
//
//	err := engine.MakeDirectory("/home/user/Documents")
//	if namespace.IsKind(err, namespace.KindAlreadyExists) {
//	    // ...
//	}
//
// The Engine is not safe for concurrent use. Hosts that call it from multiple
// goroutines wrap it in a mutex (see internal/providers/namespace).
package namespace
