package analytics

import "strconv"

// round rounds the exact binary value of x to the given number of decimals,
// with true ties going to the even digit. 0.625 becomes 0.62, and 0.615
// (stored just below the tie) becomes 0.61.
func round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// mean is sum/n, or 0 for an empty set.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
