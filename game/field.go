package game

import "math"

// RandSource is the entropy consumed by Generate. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// Generate places mineCount mines on a width x height board and computes the
// neighbor counts of every other cell. Parameters are not validated here;
// callers go through NewSession or NewLayout.
func Generate(width, height, mineCount int, rng RandSource) *MineLayout {
	return newLayout(width, height, sampleCells(width*height, mineCount, width, rng))
}

// sampleCells selects k of the n cells (visited in row-major order) with
// reservoir sampling, using the skip-based Algorithm L: after the reservoir is
// full, only the cells that will replace a reservoir slot are drawn for.
func sampleCells(n, k, width int, rng RandSource) []Coord {
	if k <= 0 {
		return nil
	}

	reservoir := make([]Coord, k)
	for i := 0; i < k; i++ {
		reservoir[i] = Coord{i / width, i % width}
	}

	invK := 1 / float64(k)
	w := math.Exp(math.Log(openUnit(rng)) * invK)

	i := k - 1
	for {
		skip := math.Floor(math.Log(openUnit(rng)) / math.Log1p(-w))
		if math.IsNaN(skip) || skip >= float64(n-1-i) {
			break
		}
		i += int(skip) + 1

		reservoir[rng.Intn(k)] = Coord{i / width, i % width}
		w *= math.Exp(math.Log(openUnit(rng)) * invK)
	}

	return reservoir
}

// openUnit draws uniformly from (0, 1)
func openUnit(rng RandSource) float64 {
	for {
		if u := rng.Float64(); u > 0 {
			return u
		}
	}
}
