package ge25519

// slide returns the width-5 sliding-window signed representation of a:
// a = sum(r[i] * 2^i), every non-zero r[i] is odd and in [-15, 15], and
// non-zero digits are usually at least six positions apart.
func slide(a *[32]byte) [256]int8 {
	var r [256]int8
	for i := range r {
		r[i] = int8(1 & (a[i>>3] >> (i & 7)))
	}

	for i := range r {
		if r[i] == 0 {
			continue
		}
		for b := 1; b <= 6 && i+b < 256; b++ {
			if r[i+b] == 0 {
				continue
			}
			// r[i+b] is 1 here, so it is worth 2^b at position i.
			if r[i]+(r[i+b]<<b) <= 15 {
				r[i] += r[i+b] << b
				r[i+b] = 0
			} else if r[i]-(r[i+b]<<b) >= -15 {
				r[i] -= r[i+b] << b
				for k := i + b; k < 256; k++ {
					if r[k] == 0 {
						r[k] = 1
						break
					}
					r[k] = 0
				}
			} else {
				break
			}
		}
	}
	return r
}

// VarTimeDoubleScalarBaseMult sets v = a * A + b * B, where B is the
// canonical base point, and returns v. Scalars are little-endian.
//
// Execution time depends on a, A and b. It must only be used when none of
// them is secret, such as when verifying a signature.
func (v *ProjectivePoint) VarTimeDoubleScalarBaseMult(a *[32]byte, A *ExtendedPoint, b *[32]byte) *ProjectivePoint {
	aSlide := slide(a)
	bSlide := slide(b)

	// Ai[k] = (2k+1) * A
	var (
		Ai    [8]CachedPoint
		t     CompletedPoint
		u, A2 ExtendedPoint
		r     ProjectivePoint
	)
	Ai[0].FromExtended(A)
	t.DoubleExtended(A)
	A2.FromCompleted(&t)
	for k := 1; k < len(Ai); k++ {
		t.Add(&A2, &Ai[k-1])
		u.FromCompleted(&t)
		Ai[k].FromExtended(&u)
	}

	r.Zero()

	i := 255
	for ; i >= 0; i-- {
		if aSlide[i] != 0 || bSlide[i] != 0 {
			break
		}
	}

	for ; i >= 0; i-- {
		t.DoubleProjective(&r)

		if aSlide[i] > 0 {
			u.FromCompleted(&t)
			t.Add(&u, &Ai[aSlide[i]/2])
		} else if aSlide[i] < 0 {
			u.FromCompleted(&t)
			t.Sub(&u, &Ai[(-aSlide[i])/2])
		}

		if bSlide[i] > 0 {
			u.FromCompleted(&t)
			t.AddPrecomputed(&u, &baseOddTable[bSlide[i]/2])
		} else if bSlide[i] < 0 {
			u.FromCompleted(&t)
			t.SubPrecomputed(&u, &baseOddTable[(-bSlide[i])/2])
		}

		r.FromCompleted(&t)
	}

	*v = r
	return v
}
