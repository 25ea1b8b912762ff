package join

import "strconv"

// CanonicalNumericKey formats f as a join key in a way that normalizes
// mathematically-equal values (1 and 1.0) to the same string without
// conflating distinct values (1 and 1.5). The 'g' format already
// collapses an integral float to its shortest decimal form, so 1 and
// 1.0 both canonicalize to "1" while 1.5 stays "1.5".
func CanonicalNumericKey(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
