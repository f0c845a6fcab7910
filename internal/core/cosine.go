// ABOUTME: Cosine similarity helpers for embedding comparison
// ABOUTME: Used by the carry-in detector against the recent-entry window
package core

import "math"

// cosineSimilarity calculates cosine similarity between two vectors.
// Mismatched lengths and zero vectors score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// maxCosineSimilarity returns the highest similarity between target and any
// of the candidate vectors, or 0 when there are none
func maxCosineSimilarity(target []float64, vectors [][]float64) float64 {
	max := 0.0
	for _, v := range vectors {
		if sim := cosineSimilarity(target, v); sim > max {
			max = sim
		}
	}
	return max
}

// overlap returns the members of a that also appear in b, preserving a's order
func overlap(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}

	var out []string
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
