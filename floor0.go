package floor

import "math"

// Floor0Config is the legacy LSP-coefficient floor configuration
// (section 4.2). It caches a Bark-scale frequency map per configured
// block size so Apply never recomputes atan calls on the hot path.
type Floor0Config struct {
	order       int
	rate        int
	barkMapSize int
	ampBits     int
	ampOffset   int
	books       []Codebook
	bookBits    int

	blockSizeShort int
	blockSizeLong  int
	barkMapShort   []float32
	barkMapLong    []float32
}

// Floor0Data is the per-packet, per-channel unpack result for Floor0.
type Floor0Data struct {
	blockSize int
	amp       float32
	coeff     []float32

	forceEnergy   bool
	forceNoEnergy bool
}

func (*Floor0Config) Type() Type { return TypeZero }

func (d *Floor0Data) Type() Type { return TypeZero }

// ExecuteChannel reports (forceEnergy || amp>0) && !forceNoEnergy.
func (d *Floor0Data) ExecuteChannel() bool {
	hasEnergy := d.amp > 0
	return (d.forceEnergy || hasEnergy) && !d.forceNoEnergy
}

func (d *Floor0Data) SetForceEnergy(v bool)   { d.forceEnergy = v }
func (d *Floor0Data) SetForceNoEnergy(v bool) { d.forceNoEnergy = v }

// SetupFloor0 reads a type-0 configuration from the setup header (section
// 6, "Floor0" bitstream fragment) and synthesises the Bark maps for both
// configured block sizes.
func SetupFloor0(r PacketReader, codebooks []Codebook, blockSizeShort, blockSizeLong int) (*Floor0Config, error) {
	orderV, err := r.ReadBits(8)
	if err != nil {
		return nil, err
	}
	rateV, err := r.ReadBits(16)
	if err != nil {
		return nil, err
	}
	barkMapSizeV, err := r.ReadBits(16)
	if err != nil {
		return nil, err
	}
	ampBitsV, err := r.ReadBits(6)
	if err != nil {
		return nil, err
	}
	ampOffsetV, err := r.ReadBits(8)
	if err != nil {
		return nil, err
	}
	numBooksM1, err := r.ReadBits(4)
	if err != nil {
		return nil, err
	}
	numBooks := int(numBooksM1) + 1
	books := make([]Codebook, numBooks)
	for i := range books {
		idx, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		if int(idx) >= len(codebooks) {
			return nil, ErrMalformedStream
		}
		books[i] = codebooks[idx]
	}

	order := int(orderV)
	// Apply's coefficient product is hard-coded to three factor pairs
	// (six coefficients); an order this narrow cannot supply them, and
	// the reference gives no defined behaviour for it.
	if order < 6 {
		return nil, ErrMalformedStream
	}

	cfg := &Floor0Config{
		order:          order,
		rate:           int(rateV),
		barkMapSize:    int(barkMapSizeV),
		ampBits:        int(ampBitsV),
		ampOffset:      int(ampOffsetV),
		books:          books,
		bookBits:       bitsForCount(numBooks),
		blockSizeShort: blockSizeShort,
		blockSizeLong:  blockSizeLong,
	}
	cfg.barkMapShort = synthesizeBarkMap(blockSizeShort, cfg.rate, cfg.barkMapSize)
	cfg.barkMapLong = synthesizeBarkMap(blockSizeLong, cfg.rate, cfg.barkMapSize)
	return cfg, nil
}

// bitsForCount returns ceil(log2(n)) for n >= 1.
func bitsForCount(n int) int {
	bits := 0
	for (1 << uint(bits)) < n {
		bits++
	}
	return bits
}

func toBark(x float64) float64 {
	return 13.1*math.Atan(0.00074*x) + 2.24*math.Atan(1.85e-8*x*x) + 1e-4*x
}

// synthesizeBarkMap builds the block-size-specific Bark map described in
// section 4.2: n-1 computed entries, a default entry at n-1, and a
// sentinel -1 at index n that terminates Apply's outer walk.
func synthesizeBarkMap(n, rate, barkMapSize int) []float32 {
	m := make([]float32, n+1)
	barkNyquist := toBark(0.5 * float64(rate))
	for i := 0; i <= n-2; i++ {
		v := toBark(float64(rate)*float64(i)/float64(2*n)) * (float64(barkMapSize) / barkNyquist)
		if v > float64(barkMapSize-1) {
			v = float64(barkMapSize - 1)
		}
		m[i] = float32(v)
	}
	m[n] = -1.0
	return m
}

// Unpack reads one packet's amplitude and, if non-silent, its LSP
// coefficient vector (section 4.2, "Unpack"). End of packet while
// reading coefficients demotes the channel to silent rather than
// failing.
func (c *Floor0Config) Unpack(r PacketReader, blockSize int) (*Floor0Data, error) {
	ampV, err := r.ReadBits(uint(c.ampBits))
	if err != nil {
		return &Floor0Data{blockSize: blockSize}, nil
	}
	if ampV == 0 {
		return &Floor0Data{blockSize: blockSize}, nil
	}

	bookIdxV, err := r.ReadBits(uint(c.bookBits))
	if err != nil {
		return &Floor0Data{blockSize: blockSize}, nil
	}
	if int(bookIdxV) >= len(c.books) {
		return nil, ErrMalformedStream
	}
	book := c.books[bookIdxV]

	coeff := make([]float32, 0, c.order)
	for len(coeff) < c.order {
		vec, err := book.DecodeVQ(r)
		if err != nil {
			return &Floor0Data{blockSize: blockSize}, nil
		}
		coeff = append(coeff, vec...)
	}
	coeff = coeff[:c.order]

	return &Floor0Data{blockSize: blockSize, amp: float32(ampV), coeff: coeff}, nil
}

// Apply synthesises the Bark-domain curve and multiplies residue in
// place (section 4.2, "Apply"). A silent floor (amp == 0) is a no-op.
func (c *Floor0Config) Apply(data *Floor0Data, residue []float32) {
	if data.amp <= 0 {
		return
	}

	barkMap := c.barkMapLong
	if data.blockSize == c.blockSizeShort {
		barkMap = c.barkMapShort
	}

	order := c.order
	maxAmp := float32((uint64(1) << uint(c.ampBits)) - 1)

	i := 0
	for i < data.blockSize {
		if barkMap[i] < 0 {
			break
		}
		w := math.Pi * float64(barkMap[i]) / float64(c.barkMapSize)
		cosw := math.Cos(w)

		var mP, mQ float64
		var adjP, adjQ int
		if order%2 == 1 {
			mP, adjP = 1-cosw*cosw, 3
			mQ, adjQ = 0.25, 1
		} else {
			mP, adjP = 1-cosw, 2
			mQ, adjQ = 1+cosw, 2
		}

		p := mP * float64(order-adjP)
		for _, k := range [3]int{1, 3, 5} {
			d := math.Cos(float64(data.coeff[k])) - cosw
			p *= 4 * d * d
		}
		q := mQ * float64(order-adjQ)
		for _, k := range [3]int{0, 2, 4} {
			d := math.Cos(float64(data.coeff[k])) - cosw
			q *= 4 * d * d
		}

		value := math.Exp(0.11512925 * (float64(data.amp)*float64(c.ampOffset)/(float64(maxAmp)*math.Sqrt(p+q)) - float64(c.ampOffset)))
		v := float32(value)

		curMapVal := barkMap[i]
		for i < data.blockSize && barkMap[i] == curMapVal {
			residue[i] *= v
			i++
		}
	}
}
