// Package compacthash provides a small, fast, non-cryptographic 64-bit hash
// for fingerprinting byte sequences: content addressing, hash-table keys,
// deduplication and checksums. It must not be used where an adversary chooses
// the input and observes the output.
//
// The hasher keeps a 128-bit state in two 64-bit lanes. Input is consumed in
// 16-byte blocks; each lane absorbs one little-endian word per block through a
// multiply-fold compression step in the style of wyhash. Finalization merges
// the lanes, mixes in the total input length, and runs an xxh64-style
// avalanche.
//
// [Hasher] implements [hash.Hash64] and buffers incomplete blocks between
// writes, so the digest depends only on the bytes written, never on how they
// were split across calls.
//
// # Extended output
//
// [SumMany] derives n independent 64-bit words from one input. Word i is the
// digest of the input followed by i (as 8 little-endian bytes), hashed with
// the i-th output of a [splitmix.Source] seeded with the caller's seed.
// [Extended] is the streaming form.
//
// Example:
//
//	d := compacthash.Sum64WithSeed([]byte("hello world"), 12345)
//
//	h := compacthash.NewWithSeed(12345)
//	h.Write([]byte("hello "))
//	h.Write([]byte("world"))
//	_ = h.Sum64() == d // true
package compacthash
