package polymap

// Rasterize assigns every pixel of the world to its nearest seed and tallies,
// per cell, how many of its pixels the shape puts on land and on water.
//
// The scan is brute force, O(cells·width·height). Seeds are visited in
// ascending index order and only a strictly smaller distance replaces the
// current best, so on an exact tie the lowest index owns the pixel.
func Rasterize(w *World, shape Shape) {
	width, height := w.Config.Width, w.Config.Height
	n := len(w.Seeds)

	w.Owner = make([]int, width*height)
	w.LandPixels = make([]int, n)
	w.WaterPixels = make([]int, n)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			owner := NearestSeed(w.Seeds, x, y)
			w.Owner[y*width+x] = owner

			nx, ny := normalize(x, y, width, height)
			if shape.IsLand(nx, ny) {
				w.LandPixels[owner]++
			} else {
				w.WaterPixels[owner]++
			}
		}
	}
}

// NearestSeed returns the index of the seed closest to (x, y), lowest index on
// ties. Squared integer distances keep the comparison exact.
func NearestSeed(seeds []SeedPoint, x, y int) int {
	best := 0
	bestDist := sqDist(seeds[0], x, y)
	for i := 1; i < len(seeds); i++ {
		if d := sqDist(seeds[i], x, y); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func sqDist(p SeedPoint, x, y int) int64 {
	dx := int64(p.X - x)
	dy := int64(p.Y - y)
	return dx*dx + dy*dy
}

// AssignTypes turns the pixel tallies into preliminary cell types: a cell with
// more land than water pixels is Land (depth Unreached, moisture 0), anything
// else is Water (depth 0, moisture 1). Cells owning no pixels end up Water.
func AssignTypes(w *World) {
	n := len(w.Seeds)
	w.Types = make([]CellType, n)
	w.Depth = make([]float64, n)
	w.Moisture = make([]float64, n)

	for i := 0; i < n; i++ {
		if w.LandPixels[i] > w.WaterPixels[i] {
			w.Types[i] = Land
			w.Depth[i] = Unreached
			w.Moisture[i] = 0
		} else {
			w.Types[i] = Water
			w.Depth[i] = 0
			w.Moisture[i] = 1.0
		}
	}
}

// SprinkleMoisture sets a uniform [0,3) moisture on count randomly picked
// cells. Picks are with replacement, so the same cell may be hit twice.
func SprinkleMoisture(w *World, rng *RNG, count int) {
	n := len(w.Seeds)
	for k := 0; k < count; k++ {
		i := rng.IntN(n)
		w.Moisture[i] = rng.Uniform(0, 3)
	}
}
