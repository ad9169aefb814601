// Package splitmix implements the SplitMix64 pseudo-random generator.
//
// A [Source] holds a single 64-bit state that advances by a fixed odd
// increment on every draw; each output is the state run through a
// xor-shift/multiply finalizer. The generator visits all 2^64 states before
// repeating, and a given seed always yields the same sequence on every
// platform.
//
// SplitMix64 is a seeding primitive, not a cryptographic generator. The
// compacthash package uses it to derive independent per-word seeds for
// extended output.
//
// Example:
//
//	src := splitmix.New(12345)
//	a := src.Uint64()
//	src.Discard(10) // skip ten outputs
//	b := src.Uint64()
package splitmix
