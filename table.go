package ge25519

// basePointBytes is the encoding of B = (x, 4/5) with x positive.
var basePointBytes = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

// The tables below are filled once by init and only read afterwards, so
// they can be shared by any number of goroutines.
var (
	basePoint ExtendedPoint

	// baseTable[i][j] = (j+1) * 256^i * B.
	baseTable [32][8]PrecomputedPoint

	// baseOddTable[j] = (2j+1) * B.
	baseOddTable [8]PrecomputedPoint
)

func init() {
	if _, err := basePoint.SetBytes(&basePointBytes); err != nil {
		panic("ge25519: invalid base point: " + err.Error())
	}

	var (
		row, acc ExtendedPoint
		cached   CachedPoint
		r        CompletedPoint
		s        ProjectivePoint
	)

	row.Set(&basePoint)
	for i := range baseTable {
		cached.FromExtended(&row)
		acc.Set(&row)
		for j := range baseTable[i] {
			baseTable[i][j].FromExtended(&acc)
			r.Add(&acc, &cached)
			acc.FromCompleted(&r)
		}

		// row *= 256
		r.DoubleExtended(&row)
		for k := 0; k < 7; k++ {
			s.FromCompleted(&r)
			r.DoubleProjective(&s)
		}
		row.FromCompleted(&r)
	}

	var b2 ExtendedPoint
	r.DoubleExtended(&basePoint)
	b2.FromCompleted(&r)
	cached.FromExtended(&b2)

	acc.Set(&basePoint)
	for j := range baseOddTable {
		baseOddTable[j].FromExtended(&acc)
		r.Add(&acc, &cached)
		acc.FromCompleted(&r)
	}
}
