package complaint

import "math"

// CosineSimilarity computes the cosine similarity between two embedding
// vectors. Empty or mismatched-length inputs yield 0 so that "no embedding"
// reads as "no similarity" without callers special-casing it. A zero-norm
// vector also yields 0: a zero-magnitude embedding is a model failure, not
// a dissimilarity signal.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := 0; i < len(a); i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
