// internal/gf/cyclotomic.go
package gf

// cyclotomic builds the cyclotomic polynomial Φ_m reduced over GF(p),
// low-degree-first, by the divisor recurrence
//
//	x^m - 1 = Π_{d | m} Φ_d(x)
//
// dividing x^d - 1 by the Φ_e of the proper divisors e | d, ascending.
func cyclotomic(m int, p uint64) []uint64 {
	divisors := divisorsOf(m)
	phi := make(map[int][]uint64, len(divisors))
	for _, d := range divisors {
		f := xPowMinusOne(d, p)
		for _, e := range divisorsOf(d) {
			if e == d {
				continue
			}
			f, _ = polyDivMod(f, phi[e], p)
		}
		phi[d] = f
	}
	return phi[m]
}

// divisorsOf returns the positive divisors of m in ascending order.
func divisorsOf(m int) []int {
	var small, large []int
	for d := 1; d*d <= m; d++ {
		if m%d == 0 {
			small = append(small, d)
			if d != m/d {
				large = append(large, m/d)
			}
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}
