// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "math"

// CosineSimilarity computes the cosine similarity of a and b, treating both
// as dense vectors over universe with 0 substituted for missing users.
//
// Returns 0 when either norm is zero.
func CosineSimilarity(a, b Vector, universe []int) float64 {
	var dot, normA, normB float64
	for _, userID := range universe {
		ra := a[userID]
		rb := b[userID]

		dot += ra * rb
		normA += ra * ra
		normB += rb * rb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
