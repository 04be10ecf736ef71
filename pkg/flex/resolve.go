package flex

import (
	"math"

	"github.com/go-drift/flexlayout/pkg/graphics"
)

// resolveMainAxis turns the requested main extents of items into resolved
// ones within available space:
//
//  1. On overflow, shrink factors take space away in proportion to
//     shrink × basis, never below an item's minimum.
//  2. If that is not enough and cull is set, the lowest display priority
//     group is collapsed and shrinking starts again, until the items fit or
//     only the highest group is left.
//  3. Weighted items share what is left by weight. Without weights, grow
//     factors share positive free space.
//
// It reports whether the items still overflow.
func resolveMainAxis(items []*flexItem, available float64, bounded, cull bool) (overflow bool) {
	for _, it := range items {
		it.main = it.basis
		it.culled = false
	}
	if bounded {
		for {
			shrinkItems(items, available)
			if !graphics.GreatNotEqual(allocated(items), available) {
				break
			}
			if !cull || !cullLowestPriority(items) {
				overflow = true
				break
			}
		}
	}

	free := available - allocated(items)
	totalWeight, totalGrow := 0.0, 0.0
	for _, it := range items {
		if it.culled {
			continue
		}
		totalWeight += it.weight
		if !it.weighted() {
			totalGrow += it.grow
		}
	}
	switch {
	case totalWeight > 0:
		share := 0.0
		if bounded {
			share = math.Max(0, free)
		}
		for _, it := range items {
			if !it.culled && it.weighted() {
				it.main = share * it.weight / totalWeight
			}
		}
	case bounded && free > 0 && totalGrow > 0:
		for _, it := range items {
			if !it.culled && !it.weighted() {
				it.main += free * it.grow / totalGrow
			}
		}
	}
	return overflow
}

// allocated sums the main extents of the items that are neither culled nor
// weighted.
func allocated(items []*flexItem) float64 {
	sum := 0.0
	for _, it := range items {
		if !it.culled && !it.weighted() {
			sum += it.main
		}
	}
	return sum
}

func shrinkable(it *flexItem) bool {
	return !it.culled && !it.weighted() && !it.frozen
}

// shrinkItems removes overflow from items with a shrink factor. An item whose
// share would take it below its minimum is frozen at the minimum and the
// remaining overflow is spread over the others.
func shrinkItems(items []*flexItem, available float64) {
	for _, it := range items {
		if it.culled || it.weighted() {
			continue
		}
		it.main = it.basis
		it.frozen = it.shrink <= 0 || it.basis <= it.minMain
	}
	for {
		over := allocated(items) - available
		if !graphics.GreatNotEqual(over, 0) {
			return
		}
		total := 0.0
		for _, it := range items {
			if shrinkable(it) {
				total += it.shrink * it.basis
			}
		}
		if total <= 0 {
			return
		}
		clamped := false
		for _, it := range items {
			if !shrinkable(it) {
				continue
			}
			if it.main-over*it.shrink*it.basis/total <= it.minMain {
				it.main = it.minMain
				it.frozen = true
				clamped = true
			}
		}
		if clamped {
			continue
		}
		for _, it := range items {
			if shrinkable(it) {
				it.main -= over * it.shrink * it.basis / total
			}
		}
		return
	}
}

// cullLowestPriority collapses every remaining item of the lowest display
// priority. It refuses when all remaining items share one priority, so the
// highest group is never culled.
func cullLowestPriority(items []*flexItem) bool {
	lowest, highest := int32(math.MaxInt32), int32(math.MinInt32)
	for _, it := range items {
		if it.culled {
			continue
		}
		lowest = min(lowest, it.priority)
		highest = max(highest, it.priority)
	}
	if lowest >= highest {
		return false
	}
	for _, it := range items {
		if !it.culled && it.priority == lowest {
			it.culled = true
			it.main = 0
		}
	}
	return true
}
