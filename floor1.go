package floor

import (
	"sort"

	"github.com/go-vorbis/floor/util"
)

var floor1RangeTable = [4]int{256, 128, 86, 64}
var floor1YBitsTable = [4]int{8, 7, 7, 6}

// Floor1Config is the point-and-line floor configuration (section 4.3).
type Floor1Config struct {
	partitionClass     []uint8
	classDimension     []int
	classSubclassBits  []int
	classMasterBook    []Codebook
	classSubclassBooks [][]Codebook

	multiplier int
	rangeVal   int
	yBits      int

	xList   []int
	lNeigh  []int
	hNeigh  []int
	sortIdx []int
}

// Floor1Data is the per-packet, per-channel unpack result for Floor1.
// posts holds unwrapped (final_y) values once Unpack succeeds; it is
// nil for a silent floor.
type Floor1Data struct {
	blockSize int
	posts     []int32
	stepFlags []bool

	forceEnergy   bool
	forceNoEnergy bool
}

func (*Floor1Config) Type() Type { return TypeOne }

func (d *Floor1Data) Type() Type { return TypeOne }

// ExecuteChannel reports (forceEnergy || posts != nil) && !forceNoEnergy.
func (d *Floor1Data) ExecuteChannel() bool {
	hasEnergy := d.posts != nil
	return (d.forceEnergy || hasEnergy) && !d.forceNoEnergy
}

func (d *Floor1Data) SetForceEnergy(v bool)   { d.forceEnergy = v }
func (d *Floor1Data) SetForceNoEnergy(v bool) { d.forceNoEnergy = v }

// SetupFloor1 reads a type-1 configuration from the setup header (section
// 4.3, "Setup"): partition classes, per-class dimension and subclass
// books, multiplier/range, and the x_list control-point positions.
func SetupFloor1(r PacketReader, codebooks []Codebook) (*Floor1Config, error) {
	partitionCountV, err := r.ReadBits(5)
	if err != nil {
		return nil, err
	}
	partitionCount := int(partitionCountV)

	partitionClass := make([]uint8, partitionCount)
	maxClass := 0
	for i := range partitionClass {
		v, err := r.ReadBits(4)
		if err != nil {
			return nil, err
		}
		partitionClass[i] = uint8(v)
		if int(v) > maxClass {
			maxClass = int(v)
		}
	}

	numClasses := maxClass + 1
	classDimension := make([]int, numClasses)
	classSubclassBits := make([]int, numClasses)
	classMasterBook := make([]Codebook, numClasses)
	classSubclassBooks := make([][]Codebook, numClasses)

	for c := 0; c < numClasses; c++ {
		dimM1, err := r.ReadBits(3)
		if err != nil {
			return nil, err
		}
		classDimension[c] = int(dimM1) + 1

		subBits, err := r.ReadBits(2)
		if err != nil {
			return nil, err
		}
		classSubclassBits[c] = int(subBits)

		if subBits > 0 {
			mb, err := r.ReadBits(8)
			if err != nil {
				return nil, err
			}
			if int(mb) >= len(codebooks) {
				return nil, ErrMalformedStream
			}
			classMasterBook[c] = codebooks[mb]
		}

		n := 1 << subBits
		books := make([]Codebook, n)
		for k := 0; k < n; k++ {
			raw, err := r.ReadBits(8)
			if err != nil {
				return nil, err
			}
			idx := int(raw) - 1
			if idx >= 0 {
				if idx >= len(codebooks) {
					return nil, ErrMalformedStream
				}
				books[k] = codebooks[idx]
			}
		}
		classSubclassBooks[c] = books
	}

	multM1, err := r.ReadBits(2)
	if err != nil {
		return nil, err
	}
	multiplier := int(multM1) + 1

	rangeBitsV, err := r.ReadBits(4)
	if err != nil {
		return nil, err
	}
	rangeBits := uint(rangeBitsV)

	xList := make([]int, 0, 2+partitionCount*8)
	xList = append(xList, 0, 1<<rangeBits)
	for i := 0; i < partitionCount; i++ {
		dim := classDimension[partitionClass[i]]
		for d := 0; d < dim; d++ {
			v, err := r.ReadBits(rangeBits)
			if err != nil {
				return nil, err
			}
			xList = append(xList, int(v))
		}
	}

	seen := make(map[int]bool, len(xList))
	for _, x := range xList {
		if seen[x] {
			return nil, ErrMalformedStream
		}
		seen[x] = true
	}

	n := len(xList)
	lNeigh := make([]int, n)
	hNeigh := make([]int, n)
	for i := 2; i < n; i++ {
		lo, hi := -1, -1
		for j := 0; j < i; j++ {
			if xList[j] < xList[i] && (lo == -1 || xList[j] > xList[lo]) {
				lo = j
			}
			if xList[j] > xList[i] && (hi == -1 || xList[j] < xList[hi]) {
				hi = j
			}
		}
		lNeigh[i] = lo
		hNeigh[i] = hi
	}

	sortIdx := make([]int, n)
	for i := range sortIdx {
		sortIdx[i] = i
	}
	sort.SliceStable(sortIdx, func(a, b int) bool {
		return xList[sortIdx[a]] < xList[sortIdx[b]]
	})

	return &Floor1Config{
		partitionClass:     partitionClass,
		classDimension:     classDimension,
		classSubclassBits:  classSubclassBits,
		classMasterBook:    classMasterBook,
		classSubclassBooks: classSubclassBooks,
		multiplier:         multiplier,
		rangeVal:           floor1RangeTable[multiplier-1],
		yBits:              floor1YBitsTable[multiplier-1],
		xList:              xList,
		lNeigh:             lNeigh,
		hNeigh:             hNeigh,
		sortIdx:            sortIdx,
	}, nil
}

// Unpack reads the gate bit and, if set, the post values via the
// class/subclass codebook tree, then unwraps them into final_y (section
// 4.3, "Unpack" and "Post unwrap"). End of packet anywhere during
// decoding demotes the channel to silent.
func (c *Floor1Config) Unpack(r PacketReader, blockSize int) (*Floor1Data, error) {
	silent := &Floor1Data{blockSize: blockSize}

	gate, err := r.ReadBit()
	if err != nil {
		return silent, nil
	}
	if !gate {
		return silent, nil
	}

	n := len(c.xList)
	posts := make([]int32, n)

	y0, err := r.ReadBits(uint(c.yBits))
	if err != nil {
		return silent, nil
	}
	y1, err := r.ReadBits(uint(c.yBits))
	if err != nil {
		return silent, nil
	}
	posts[0] = int32(y0)
	posts[1] = int32(y1)

	idx := 2
	for i := 0; i < len(c.partitionClass); i++ {
		class := c.partitionClass[i]
		cbits := c.classSubclassBits[class]
		var cval uint32
		if cbits > 0 {
			v, err := c.classMasterBook[class].DecodeScalar(r)
			if err != nil {
				return silent, nil
			}
			cval = v
		}

		dim := c.classDimension[class]
		mask := uint32(1<<uint(cbits)) - 1
		for d := 0; d < dim; d++ {
			book := c.classSubclassBooks[class][cval&mask]
			cval >>= uint(cbits)

			var val uint32
			if book != nil {
				v, err := book.DecodeScalar(r)
				if err != nil {
					return silent, nil
				}
				val = v
			}
			posts[idx] = int32(val)
			idx++
		}
	}

	finalY, stepFlags := c.unwrap(posts)
	return &Floor1Data{blockSize: blockSize, posts: finalY, stepFlags: stepFlags}, nil
}

func (c *Floor1Config) unwrap(posts []int32) ([]int32, []bool) {
	n := len(posts)
	finalY := make([]int32, n)
	stepFlags := make([]bool, n)

	finalY[0], finalY[1] = posts[0], posts[1]
	stepFlags[0], stepFlags[1] = true, true

	for i := 2; i < n; i++ {
		lo, hi := c.lNeigh[i], c.hNeigh[i]
		predicted := renderPoint(c.xList[lo], int(finalY[lo]), c.xList[hi], int(finalY[hi]), c.xList[i])
		highroom := c.rangeVal - predicted
		lowroom := predicted
		room := 2 * util.Min(highroom, lowroom)
		val := int(posts[i])

		if val == 0 {
			finalY[i] = int32(predicted)
			continue
		}

		stepFlags[lo] = true
		stepFlags[hi] = true
		stepFlags[i] = true

		var fy int
		switch {
		case val >= room:
			if highroom > lowroom {
				fy = val - lowroom + predicted
			} else {
				// Reference falls through to this branch even when
				// highroom == lowroom.
				fy = predicted - val + highroom - 1
			}
		case val%2 == 1:
			fy = predicted - (val+1)/2
		default:
			fy = predicted + val/2
		}
		finalY[i] = int32(fy)
	}
	return finalY, stepFlags
}

// renderPoint performs the integer interpolation described in section
// 4.3: y value at X on the line through (x0,y0) and (x1,y1).
func renderPoint(x0, y0, x1, y1, x int) int {
	dy := y1 - y0
	adx := x1 - x0
	ady := util.Abs(dy)
	off := (ady * (x - x0)) / adx
	if dy < 0 {
		return y0 - off
	}
	return y0 + off
}

// Apply renders the piecewise-linear dB curve in sort order and
// multiplies residue in place (section 4.3, "Curve render and
// multiply"). A silent floor is a no-op.
func (c *Floor1Config) Apply(data *Floor1Data, residue []float32) {
	if data.posts == nil {
		return
	}

	n := data.blockSize / 2
	lx, ly := 0, int(data.posts[0])*c.multiplier

	for i := 1; i < len(c.sortIdx); i++ {
		idx := c.sortIdx[i]
		if !data.stepFlags[idx] {
			continue
		}
		hx := c.xList[idx]
		hy := int(data.posts[idx]) * c.multiplier

		clampedHx := hx
		if clampedHx > n {
			clampedHx = n
		}
		renderLineMulti(residue, lx, ly, clampedHx, hy)

		lx, ly = hx, hy
		if lx >= n {
			break
		}
	}
	if lx < n {
		renderLineMulti(residue, lx, ly, n, ly)
	}
}

// renderLineMulti is the Bresenham-style rasteriser of section 4.3: it
// writes v[x] *= invDBTable[y] for one integer y per x in [x0,x1).
//
// The reference derives the step direction from an arithmetic right
// shift of the signed delta; Go guarantees arithmetic shift on signed
// integers too, but the sign is computed with a plain comparison here
// to stay correct in a port to a language that does not make that
// guarantee.
func renderLineMulti(v []float32, x0, y0, x1, y1 int) {
	dy := y1 - y0
	adx := x1 - x0
	ady := util.Abs(dy)
	sy := 1
	if dy < 0 {
		sy = -1
	}
	b := dy / adx
	err := -adx
	ady -= util.Abs(b) * adx

	y := y0
	v[x0] *= invDBTable[y]
	for x := x0 + 1; x < x1; x++ {
		y += b
		err += ady
		if err >= 0 {
			err -= adx
			y += sy
		}
		v[x] *= invDBTable[y]
	}
}
