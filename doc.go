// Package floor decodes the spectral envelope ("floor curve") of an Ogg
// Vorbis I audio stream.
//
// Two floor variants share a single setup dispatch: a legacy LSP-based
// floor (type 0, see Floor0Config) and the point-and-line floor used by
// nearly every real-world encoder (type 1, see Floor1Config). Both
// variants expose the same three-stage lifecycle:
//
//   - Setup runs once per stream, parsing a configuration out of the
//     Vorbis setup header.
//   - Unpack runs once per audio packet per channel, reading the
//     per-packet floor data.
//   - Apply runs after residue decoding and multiplies a caller-owned
//     spectral buffer in place by the reconstructed curve.
//
// The package treats the packet-level bit reader and the codebook
// Huffman/VQ decoder as pluggable collaborators (see PacketReader and
// Codebook); concrete implementations live in the sibling bitreader and
// codebook packages.
package floor
