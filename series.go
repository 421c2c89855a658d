package gcomplex

// maxSeriesTerms bounds every power series. On the disks where the series
// are used they converge well before it.
const maxSeriesTerms = 40

// partialSum accumulates a power series until adding a term no longer
// changes the sum, or the term budget runs out.
type partialSum[F Float] struct {
	sum   Complex[F]
	prior Complex[F]
	n     int
}

// add folds term into the sum and reports whether the loop should go on.
func (p *partialSum[F]) add(term Complex[F]) bool {
	p.prior = p.sum
	p.sum = p.sum.Add(term)
	p.n++
	return !p.sum.Equal(p.prior) && p.n < maxSeriesTerms
}

// asinSeries sums asin x = Σ k_n·x^(2n+1)/(2n+1) with k_0 = 1 and
// k_n = k_(n-1)·(2n-1)/(2n). It returns the sum and the terms used.
func (f Funcs[F]) asinSeries(x Complex[F]) (Complex[F], int) {
	p := partialSum[F]{sum: x}
	xx := x.Mul(x)
	pow := x
	var k F = 1
	for n := 1; ; n++ {
		odd := F(2*n - 1)
		k *= odd / (odd + 1)
		pow = pow.Mul(xx)
		if !p.add(pow.Scale(k / (odd + 2))) {
			break
		}
	}
	return p.sum, p.n
}

// atanSeries sums atan x = x - x³/3 + x⁵/5 - ...
func (f Funcs[F]) atanSeries(x Complex[F]) (Complex[F], int) {
	p := partialSum[F]{sum: x}
	xx := x.Mul(x)
	pow := x
	for n := 1; ; n++ {
		pow = pow.Mul(xx)
		term := pow.Divide(F(2*n + 1))
		if n%2 == 1 {
			term = term.Neg()
		}
		if !p.add(term) {
			break
		}
	}
	return p.sum, p.n
}

// log1pSeries sums log(1+x) = 2·(u + u³/3 + u⁵/5 + ...) with u = x/(2+x).
// For |x| ≤ 1/2, |u| ≤ 1/3, so every term shrinks the previous one ninefold.
func (f Funcs[F]) log1pSeries(x Complex[F]) (Complex[F], int) {
	u := x.Div(x.addReal(2))
	p := partialSum[F]{sum: u}
	uu := u.Mul(u)
	pow := u
	for n := 1; ; n++ {
		pow = pow.Mul(uu)
		if !p.add(pow.Divide(F(2*n + 1))) {
			break
		}
	}
	return p.sum.Scale(2), p.n
}
