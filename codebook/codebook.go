// Package codebook implements the Huffman-coded VQ codebook capability
// the floor decoder calls into: decode_scalar (one Huffman entry index)
// and decode_vq (one lookup-type-1 vector of floats), per Vorbis I
// section 3.2.
//
// Codebook construction itself (building canonical codewords from a
// stream of codeword lengths, and decoding lookup-type-1 VQ vectors) is
// declared out of scope by the floor specification -- the floor only
// calls into a Codebook. This package exists so the floor package has a
// real collaborator to decode against in tests and in a standalone
// build; it is not a full Vorbis codebook implementation (no sparse
// ordered-length decode, no lookup type 2).
package codebook

import (
	"sort"

	"github.com/go-vorbis/floor"
)

// Codebook is a canonical Huffman-coded, optionally VQ-mapped codebook.
// It satisfies floor.Codebook.
type Codebook struct {
	dimension int
	lengths   []int8 // length in bits per entry; <= 0 means unused

	// codewords, bucketed by bit length, per the canonical Huffman
	// construction of Vorbis I section 3.2.1.
	byLength map[uint8]map[uint32]int

	// Lookup-type-1 VQ parameters (section 3.2.1). lookupType == 0 means
	// DecodeVQ returns zero vectors (the codebook is scalar-only, as used
	// by floor1's class and subclass books).
	lookupType    int
	minValue      float32
	deltaValue    float32
	sequenceP     bool
	multiplicands []uint32
	quantVals     int
}

// New builds a codebook from dimension and one codeword length per
// entry. A length <= 0 marks an unused ("sparse") entry.
func New(dimension int, lengths []int8) (*Codebook, error) {
	cb := &Codebook{dimension: dimension, lengths: lengths}
	if err := cb.buildHuffman(); err != nil {
		return nil, err
	}
	return cb, nil
}

// WithLookup1 attaches lookup-type-1 VQ parameters so DecodeVQ can
// expand a decoded entry into a vector of dimension floats.
func (cb *Codebook) WithLookup1(minValue, deltaValue float32, sequenceP bool, multiplicands []uint32) {
	cb.lookupType = 1
	cb.minValue = minValue
	cb.deltaValue = deltaValue
	cb.sequenceP = sequenceP
	cb.multiplicands = multiplicands
	cb.quantVals = len(multiplicands)
}

// Dimension reports the number of floats one DecodeVQ call produces.
func (cb *Codebook) Dimension() int { return cb.dimension }

func (cb *Codebook) buildHuffman() error {
	type used struct {
		index  int
		length uint8
	}
	var entries []used
	for i, l := range cb.lengths {
		if l > 0 {
			entries = append(entries, used{i, uint8(l)})
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].length < entries[b].length
	})

	cb.byLength = make(map[uint8]map[uint32]int)
	var code uint32
	var prevLen uint8
	for _, e := range entries {
		code <<= e.length - prevLen
		if cb.byLength[e.length] == nil {
			cb.byLength[e.length] = make(map[uint32]int)
		}
		cb.byLength[e.length][code] = e.index
		code++
		prevLen = e.length
	}
	return nil
}

// DecodeScalar reads bits one at a time, most significant bit of the
// codeword first, until they match a known codeword, and returns the
// entry it names.
func (cb *Codebook) DecodeScalar(r floor.PacketReader) (uint32, error) {
	var code uint32
	for length := uint8(1); length <= 32; length++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, floor.ErrEndOfPacket
		}
		code <<= 1
		if bit {
			code |= 1
		}
		if m, ok := cb.byLength[length]; ok {
			if entry, ok := m[code]; ok {
				return uint32(entry), nil
			}
		}
	}
	return 0, floor.ErrMalformedStream
}

// DecodeVQ decodes one entry and expands it through the lookup-type-1
// table into a vector of cb.dimension floats (Vorbis I section 3.2.1).
// Scalar-only codebooks (lookupType == 0) return a zero vector; this is
// the shape floor1 class/subclass books use via DecodeScalar instead.
func (cb *Codebook) DecodeVQ(r floor.PacketReader) ([]float32, error) {
	entry, err := cb.DecodeScalar(r)
	if err != nil {
		return nil, err
	}
	out := make([]float32, cb.dimension)
	if cb.lookupType == 0 {
		return out, nil
	}

	var last float32
	indexDivisor := 1
	idx := int(entry)
	for i := 0; i < cb.dimension; i++ {
		multOffset := (idx / indexDivisor) % cb.quantVals
		v := float32(cb.multiplicands[multOffset])*cb.deltaValue + cb.minValue + last
		out[i] = v
		if cb.sequenceP {
			last = v
		}
		indexDivisor *= cb.quantVals
	}
	return out, nil
}
