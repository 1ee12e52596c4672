package model

import (
	"math"
	"strconv"
	"strings"
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle) in image coordinates:
// the origin is the top-left corner of the page and Y increases downward.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// IsZero returns true if the bounding box is the zero value
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// ParseBBox parses a bounding box from the string encodings used by OCR
// responses. Two forms are accepted:
//
//   - "x,y,width,height"
//   - "x1,y1,x2,y2,x3,y3,x4,y4" (four corner points; reduced to the envelope)
//
// Anything else, including empty strings and unparsable numbers, yields the
// zero box rather than an error. A zero box sorts first in reading order.
func ParseBBox(s string) BBox {
	parts := strings.Split(s, ",")
	nums := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return BBox{}
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 4:
		return BBox{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	case 8:
		minX, minY := nums[0], nums[1]
		maxX, maxY := nums[0], nums[1]
		for i := 2; i < 8; i += 2 {
			minX = math.Min(minX, nums[i])
			maxX = math.Max(maxX, nums[i])
			minY = math.Min(minY, nums[i+1])
			maxY = math.Max(maxY, nums[i+1])
		}
		return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	default:
		return BBox{}
	}
}
