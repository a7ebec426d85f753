// Package reactive implements a fine-grained reactive value system: plain values wrapped
// in an Object/Slice/Mapping/Set are observed field-by-field and key-by-key, Refs hold a
// single observable value, Computeds derive a memoized value from other reactive reads,
// and Effects re-run automatically whenever anything they read last time changes.
package reactive
