// SPDX-License-Identifier: MIT

package geometry

import "slices"

// FindNearestPointWithinDistance returns the index of the point closest to
// target among those whose squared distance is strictly below maxDistance².
//
// Candidates are stably sorted by squared distance, so on equal distances the
// lowest index wins. ok is false when no point qualifies (including an empty
// slice).
//
// Complexity: O(n log n) time, O(n) space.
func FindNearestPointWithinDistance(points []Point, target Point, maxDistance float64) (index int, ok bool) {
	type candidate struct {
		idx int
		d2  float64
	}

	cands := make([]candidate, len(points))
	for i, p := range points {
		dx, dy := p.X-target.X, p.Y-target.Y
		cands[i] = candidate{idx: i, d2: dx*dx + dy*dy}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		switch {
		case a.d2 < b.d2:
			return -1
		case a.d2 > b.d2:
			return 1
		}
		return 0
	})

	limit := maxDistance * maxDistance
	for _, c := range cands {
		if c.d2 < limit {
			return c.idx, true
		}
	}

	return -1, false
}
