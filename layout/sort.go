package layout

import (
	"sort"

	"github.com/tsawler/pagemark/model"
)

// SortRegions returns a new slice with the regions in reading order:
// ascending by the top edge of each region's bounding box, ties broken by
// the left edge. Lines within each region are sorted the same way, except
// vertical-direction regions whose lines are ordered left to right first.
//
// The sort is stable, so an already-sorted input comes back identical.
// Regions or lines with missing geometry carry the zero box and sort first.
// The input is never mutated; regions and their line slices are copied.
func SortRegions(regions []model.Region) []model.Region {
	sorted := make([]model.Region, len(regions))
	copy(sorted, regions)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].BBox, sorted[j].BBox
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for i := range sorted {
		sorted[i].Lines = sortLines(sorted[i].Lines, sorted[i].Dir)
	}

	return sorted
}

// sortLines returns a sorted copy of lines. Horizontal text reads top to
// bottom; vertical text reads column by column, left to right.
func sortLines(lines []model.Line, dir model.TextDirection) []model.Line {
	sorted := make([]model.Line, len(lines))
	copy(sorted, lines)

	if dir == model.Vertical {
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].BBox, sorted[j].BBox
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y < b.Y
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].BBox, sorted[j].BBox
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return sorted
}
