// Package dataproc implements the triangular summation over integer
// sequences.
package dataproc

// Report describes a Process run: how many elements contributed to the
// total and how many were skipped as non-positive.
type Report struct {
	Counted int
	Skipped int
}

// Process accumulates, for each element v > 0, the series
// 0 + 1 + ... + (v-1), i.e. v*(v-1)/2. Elements <= 0 are skipped, not
// subtracted. Arithmetic is wrapping two's-complement int64; totals
// beyond the int64 range wrap rather than saturate or fail.
func Process(data []int64) (int64, Report) {
	var total int64
	var rep Report
	for _, v := range data {
		if v <= 0 {
			rep.Skipped++
			continue
		}
		rep.Counted++
		for i := int64(0); i < v; i++ {
			total += i
		}
	}
	return total, rep
}

// Sum is Process without the report.
func Sum(data []int64) int64 {
	total, _ := Process(data)
	return total
}
