// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "sort"

// Neighbor is a book scored against a target.
type Neighbor struct {
	BookID     int
	Similarity float64
}

// RankSimilar scores every rated book other than targetID against the
// target and returns the top n by similarity.
//
// Returns nil when the target has no ratings or n <= 0. Ties keep the
// matrix's first-appearance order.
func RankSimilar(m *Matrix, targetID, n int) []Neighbor {
	if n <= 0 {
		return nil
	}

	target, ok := m.Vector(targetID)
	if !ok {
		return nil
	}

	universe := m.Users()
	neighbors := make([]Neighbor, 0, m.Len())
	for _, bookID := range m.Books() {
		if bookID == targetID {
			continue
		}
		v, _ := m.Vector(bookID)
		neighbors = append(neighbors, Neighbor{
			BookID:     bookID,
			Similarity: CosineSimilarity(target, v, universe),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	if len(neighbors) > n {
		neighbors = neighbors[:n]
	}
	return neighbors
}
