package pricing

import "gonum.org/v1/gonum/stat/distuv"

// stdNormal is the shared standard normal distribution. distuv
// distributions are plain value types, so concurrent reads are safe.
var stdNormal = distuv.UnitNormal

// NormalCDF computes the cumulative distribution function of the standard
// normal distribution at x, i.e. P(Z <= x) for Z ~ N(0, 1).
//
// The function is total over all finite inputs: it returns a value in
// [0, 1], is monotonically non-decreasing in x, satisfies
// NormalCDF(0) = 0.5 and NormalCDF(-x) = 1 - NormalCDF(x), and saturates
// toward 0 or 1 for large |x|.
func NormalCDF(x float64) float64 {
	return stdNormal.CDF(x)
}
