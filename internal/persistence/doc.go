// Package persistence saves and restores namespace state as a single blob
// under a fixed key in a key-value Store.
//
// The blob layout is:
//
//	{
//	  "version": 1,
//	  "snapshotId": "snap_01J...",
//	  "fileSystem": {"/": {"type": "directory", "children": {...}, ...}},
//	  "currentPath": "/home/user"
//	}
//
// Timestamps are written as RFC 3339 strings and parsed back into time.Time
// at every node on load. The blob is encoded with a Codec (JSON via sonic or
// YAML) and optionally compressed with gzip or zstd; compressed blobs are
// recognized by their magic bytes on load, so changing the compression
// setting does not orphan existing state.
//
// Stores:
//   - MemoryStore: process-local, for tests and ephemeral sessions
//   - FileStore: one file per key under a directory
//   - BadgerStore: embedded BadgerDB
package persistence
