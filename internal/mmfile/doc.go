// Package mmfile opens files for hashing, preferring a read-only memory map
// via [mmapfile] and falling back to [os.File] when mapping is unavailable
// (empty files, special files, unsupported platforms).
//
// When the map is in use, Bytes gives zero-copy access to the whole file so it
// can be hashed in a single call. Otherwise Bytes returns nil and callers
// stream the content through Read or WriteTo.
package mmfile
