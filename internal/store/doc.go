// Package store persists task configs as JSON files on disk.
//
// Every operation is whole-file and stateless: nothing is cached, no file
// handle outlives a call, and concurrent writers to the same path race with
// last-write-wins semantics. Callers needing mutual exclusion must serialize
// writes themselves.
package store
