package preprocessing

const (
	intToReal = 1.0 / (1 << 31)
	intMask   = 0x7FFFFFFF

	yInitial = 842502087
	zInitial = 3579807591
	wInitial = 273326509
)

// LegacyRandom is the xorshift generator osu!stable places fruits with, sequences must match it exactly
type LegacyRandom struct {
	x, y, z, w uint32

	bitBuffer uint32
	bitIndex  int
}

func NewLegacyRandom(seed int32) *LegacyRandom {
	return &LegacyRandom{
		x:        uint32(seed),
		y:        yInitial,
		z:        zInitial,
		w:        wInitial,
		bitIndex: 32,
	}
}

func (r *LegacyRandom) NextUInt() uint32 {
	t := r.x ^ (r.x << 11)

	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ t ^ (t >> 8)

	return r.w
}

// Next returns a non-negative int32
func (r *LegacyRandom) Next() int32 {
	return int32(r.NextUInt() & intMask)
}

// NextDouble returns a value in 0..1, 1 excluded
func (r *LegacyRandom) NextDouble() float64 {
	return intToReal * float64(r.Next())
}

// NextRange returns a value between lower and upper, truncated towards zero
func (r *LegacyRandom) NextRange(lower, upper float64) int32 {
	return int32(lower + r.NextDouble()*(upper-lower))
}

// NextBool takes one bit of a buffered value, refilling every 32 calls
func (r *LegacyRandom) NextBool() bool {
	if r.bitIndex == 32 {
		r.bitBuffer = r.NextUInt()
		r.bitIndex = 1

		return r.bitBuffer&1 == 1
	}

	r.bitIndex++
	r.bitBuffer >>= 1

	return r.bitBuffer&1 == 1
}
