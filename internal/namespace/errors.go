package namespace

import (
	"errors"
	"fmt"
)

// Kind classifies namespace errors.
type Kind string

// Error kinds
const (
	KindNotFound                Kind = "not_found"
	KindNotADirectory           Kind = "not_a_directory"
	KindNotAFile                Kind = "not_a_file"
	KindAlreadyExists           Kind = "already_exists"
	KindNotEmpty                Kind = "not_empty"
	KindInvalidPermissionFormat Kind = "invalid_permission_format"
	KindInvalidPattern          Kind = "invalid_pattern"
	KindNoParent                Kind = "no_parent"
)

// Error is the single error type returned by namespace operations. Name holds
// the offending path component, permission string or pattern.
type Error struct {
	Kind Kind
	Name string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("no such file or directory: %s", e.Name)
	case KindNotADirectory:
		return fmt.Sprintf("not a directory: %s", e.Name)
	case KindNotAFile:
		return fmt.Sprintf("is a directory: %s", e.Name)
	case KindAlreadyExists:
		return fmt.Sprintf("file exists: %s", e.Name)
	case KindNotEmpty:
		return fmt.Sprintf("directory not empty: %s", e.Name)
	case KindInvalidPermissionFormat:
		return fmt.Sprintf("invalid permission format: %s", e.Name)
	case KindInvalidPattern:
		return fmt.Sprintf("invalid pattern: %s", e.Name)
	case KindNoParent:
		return "root directory has no parent"
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
}

// Is matches sentinel errors by kind so errors.Is(err, ErrNotFound) works
// regardless of the name carried.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Name == "" || t.Name == e.Name)
}

// Sentinels for errors.Is
var (
	ErrNotFound                = &Error{Kind: KindNotFound}
	ErrNotADirectory           = &Error{Kind: KindNotADirectory}
	ErrNotAFile                = &Error{Kind: KindNotAFile}
	ErrAlreadyExists           = &Error{Kind: KindAlreadyExists}
	ErrNotEmpty                = &Error{Kind: KindNotEmpty}
	ErrInvalidPermissionFormat = &Error{Kind: KindInvalidPermissionFormat}
	ErrInvalidPattern          = &Error{Kind: KindInvalidPattern}
	ErrNoParent                = &Error{Kind: KindNoParent}
)

func newError(kind Kind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

// KindOf returns the kind of a namespace error, or "" for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a namespace error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
