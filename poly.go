package precession

// Epoch supplies powers of the normalized time argument.
//
// Contract:
//   - CenturyPower(0) returns 1.
//   - CenturyPower(n) returns T^n for a single T: Julian centuries of TT
//     since J2000.0. Any memoization of the powers is the epoch's concern.
type Epoch interface {
	CenturyPower(n int) float64
}

// Evaluate sums c[i] * T^i in ascending index order with plain float64
// addition. The order is fixed so results are reproducible bit for bit.
func Evaluate(coeffs []float64, ep Epoch) float64 {
	var sum float64
	for i, c := range coeffs {
		sum += c * ep.CenturyPower(i)
	}
	return sum
}
