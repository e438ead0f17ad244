package ast

import "strconv"

// trimTrailingZeros renders value using the shortest decimal form that
// parses back to the same float64 (strconv's 'g'-style round-trip mode),
// matching how the transformer's synthesized integer literals (24, 2, 0,
// 1) should print: "24" not "24.000000".
func trimTrailingZeros(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
