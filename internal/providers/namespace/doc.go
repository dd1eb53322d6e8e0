// Package namespace exposes the virtual namespace engine as "namespace.*"
// tools for the service registry.
//
// The engine itself is single-threaded. Provider serializes every call with a
// mutex so it can sit behind the HTTP host.
//
// Failures come back as a Result with Success false, Error set to the
// message and Data["kind"] set to the error kind ("not_found",
// "already_exists", ..., or "invalid_params"). A mutation whose save failed
// still succeeds and carries Data["persist_error"].
package namespace
