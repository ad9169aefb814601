// Package multihash registers compacthash with the go-multihash registry and
// builds self-describing digests and CIDs from it.
//
// Importing the package registers [Code] as a variable-size hash backed by
// compacthash extended output: the digest is the big-endian concatenation of
// [compacthash.SumMany] words, rounded up to whole words and then truncated to
// the requested length. A shorter digest is therefore always a prefix of a
// longer one for the same input.
//
// [Code] lies in the multicodec private-use range, so CIDs built with it are
// meant for closed systems (deduplication indexes, caches), not the public
// IPFS network.
package multihash
