package polymap

import "math"

// moistureGain scales the neighbor mean each relaxation pass.
const moistureGain = 5.0

// moistureCeiling caps runaway moisture growth so values stay finite. It sits
// far above every biome threshold.
const moistureCeiling = 1e12

// Classify runs coastal refinement and then the fixed number of relaxation
// passes, leaving Types, Depth and Moisture final.
func Classify(w *World, passes int) {
	refineCoast(w)
	for p := 0; p < passes; p++ {
		relax(w)
	}
	normalizeDepth(w)
}

// refineCoast turns every Land cell into Coast (depth 1) when it touches water
// and into Inner otherwise. Inner cells keep the Unreached depth.
func refineCoast(w *World) {
	for i, t := range w.Types {
		if t != Land {
			continue
		}
		if hasWaterNeighbor(w, i) {
			w.Types[i] = Coast
			w.Depth[i] = 1
		} else {
			w.Types[i] = Inner
		}
	}
}

func hasWaterNeighbor(w *World, i int) bool {
	for _, j := range w.Adjacency.Neighbors(i) {
		if w.Types[j] == Water {
			return true
		}
	}
	return false
}

// relax runs one synchronous pass: every update reads the values from before
// the pass. Cells without neighbors are left alone.
//
// The pass count is fixed rather than run to convergence, so on graphs whose
// diameter exceeds it the farthest Inner cells stay Unreached.
func relax(w *World) {
	prevDepth := append([]float64(nil), w.Depth...)
	prevMoisture := append([]float64(nil), w.Moisture...)

	for i := range w.Types {
		neighbors := w.Adjacency.Neighbors(i)
		if len(neighbors) == 0 {
			continue
		}

		sum := 0.0
		minDepth := math.Inf(1)
		minJ := i
		for _, j := range neighbors {
			sum += prevMoisture[j]
			if prevDepth[j] < minDepth {
				minDepth = prevDepth[j]
				minJ = j
			}
		}

		if m := moistureGain * sum / float64(len(neighbors)); m > w.Moisture[i] {
			w.Moisture[i] = math.Min(m, moistureCeiling)
		}

		if w.Types[i] != Inner || minDepth >= Unreached {
			continue
		}
		if minDepth <= prevDepth[i] && minJ != i {
			w.Depth[i] = minDepth + 1
		}
	}
}

// normalizeDepth divides every depth by the largest one. Inner cells the
// relaxation never reached still hold Unreached, so they come out at 1 and
// squeeze every reached depth towards 0. When the largest depth is 0 (nothing
// but water) depths are left untouched.
func normalizeDepth(w *World) {
	maxDepth := 0.0
	for _, d := range w.Depth {
		maxDepth = math.Max(maxDepth, d)
	}
	if maxDepth == 0 {
		return
	}

	for i := range w.Depth {
		w.Depth[i] /= maxDepth
	}
}
