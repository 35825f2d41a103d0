// Package nhuff provides n-ary (radix-d) Huffman coding over bytes.
//
// # Overview
//
// A Table maps every byte of an input alphabet to a codeword: a non-empty
// string of digits drawn from "0".."9","a".."z", so the radix d ranges over
// 2..36. Codewords come from the optimal d-ary merge tree for the input's
// byte frequencies, which minimizes the expected codeword length. d=2 is
// classical binary Huffman coding.
//
// The code is prefix-free: no codeword is a prefix of another, so the
// encoded stream needs no delimiters and decodes greedily.
//
// # Building a Table
//
//	tbl, err := nhuff.Train(data, 3)
//
// Train is Count, BuildTree and Generate in sequence; each step is exported
// for callers that already hold a frequency profile or want the tree:
//
//	f, _ := nhuff.Count(data)
//	root, _ := nhuff.BuildTree(f.Weights(), 3)
//	tbl, _ := nhuff.Generate(root, 3)
//
// The first merge combines k = 2 + (n-2) mod (d-1) nodes and every later
// merge combines d, so the root is always full. Equal weights are ordered by
// first appearance in the input, which makes tables reproducible.
//
// # Encoding and Decoding
//
//	digits, err := tbl.EncodeAll(data)
//	original, err := tbl.DecodeAll(digits)
//
// The encoded form is a sequence of digit characters, one codeword per
// input byte, with no header. It is not bit-packed: for d <= 10 it is larger
// than the input. Decoding walks the code trie and fails with
// ErrMalformedStream on truncated or corrupt input rather than emitting
// wrong bytes.
//
// # Out-of-band Tables
//
// Encoder and decoder must share the same Table. Serialize it with WriteTo
// or MarshalBinary and restore it with ReadFrom or UnmarshalBinary.
//
// A Table is immutable once built and may be shared by concurrent encoders
// and decoders.
package nhuff
