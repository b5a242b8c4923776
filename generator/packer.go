package generator

import "sort"
import "image"

const atlasPadding = 1

// Shelf packing: masks are placed left to right in rows sorted by
// decreasing height. Returns one region per given size (empty for
// zero-sized entries) and the power-of-two atlas size containing them.
func packShelves(sizes []image.Point, padding int) ([]image.Rectangle, image.Point) {
	regions := make([]image.Rectangle, len(sizes))

	// figure out a reasonable atlas width
	area, widest := 0, 0
	order := make([]int, 0, len(sizes))
	for i, size := range sizes {
		if size.X <= 0 || size.Y <= 0 { continue }
		order = append(order, i)
		area += (size.X + padding)*(size.Y + padding)
		if size.X > widest { widest = size.X }
	}
	width := nextPowerOfTwo(isqrtCeil(area))
	if width < widest + 2*padding {
		width = nextPowerOfTwo(widest + 2*padding)
	}

	sort.SliceStable(order, func(a, b int) bool {
		return sizes[order[a]].Y > sizes[order[b]].Y
	})

	x, y, shelfHeight := padding, padding, 0
	for _, i := range order {
		size := sizes[i]
		if x + size.X + padding > width {
			y += shelfHeight + padding
			x, shelfHeight = padding, 0
		}
		regions[i] = image.Rect(x, y, x + size.X, y + size.Y)
		x += size.X + padding
		if size.Y > shelfHeight { shelfHeight = size.Y }
	}

	height := nextPowerOfTwo(y + shelfHeight + padding)
	return regions, image.Pt(width, height)
}

func nextPowerOfTwo(value int) int {
	power := 1
	for power < value { power <<= 1 }
	return power
}

func isqrtCeil(value int) int {
	root := 0
	for root*root < value { root += 1 }
	return root
}
