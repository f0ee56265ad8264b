package normalize

// Zip aligns parallel sequences by index. It yields one tuple per element of
// the first sequence; tuple[j] is seqs[j][i], or missing when seqs[j] is
// shorter. Elements of later sequences beyond the first one's length are
// dropped. An absent or empty first sequence yields an empty result.
func Zip[T any](missing T, seqs ...[]T) [][]T {
	if len(seqs) == 0 || len(seqs[0]) == 0 {
		return [][]T{}
	}

	tuples := make([][]T, len(seqs[0]))
	for i := range seqs[0] {
		tuple := make([]T, len(seqs))
		for j, seq := range seqs {
			if i < len(seq) {
				tuple[j] = seq[i]
			} else {
				tuple[j] = missing
			}
		}
		tuples[i] = tuple
	}
	return tuples
}
