package terrain

import "math/rand"

// GenerateObstacleField builds a deterministic map for demos, reports
// and tests: rectangular wall clusters scattered until roughly the
// requested fraction of cells is blocked, over ground broken up with
// slow patches. The same (dimensions, density, seed) triple always
// produces the same map.
func GenerateObstacleField(width, height int, density float64, seed int64) *Map {
	m := NewMap(width, height)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- map generation, not security

	if density < 0 {
		density = 0
	}
	if density > 0.4 {
		density = 0.4 // leave the field navigable
	}

	// Slow-ground patches first so walls can overwrite their cells.
	patches := (width * height) / 160
	for i := 0; i < patches; i++ {
		g := GroundMud
		switch rng.Intn(3) {
		case 1:
			g = GroundSand
		case 2:
			g = GroundGravel
		}
		px := rng.Intn(width)
		py := rng.Intn(height)
		pw := 2 + rng.Intn(4)
		ph := 2 + rng.Intn(4)
		for y := py; y < py+ph; y++ {
			for x := px; x < px+pw; x++ {
				m.SetGround(x, y, g)
			}
		}
	}

	target := int(float64(width*height) * density)
	blocked := 0
	for attempts := 0; blocked < target && attempts < width*height; attempts++ {
		ox := rng.Intn(width)
		oy := rng.Intn(height)
		ow := 1 + rng.Intn(3)
		oh := 1 + rng.Intn(3)
		for y := oy; y < oy+oh; y++ {
			for x := ox; x < ox+ow; x++ {
				if !m.InBounds(x, y) || m.Blocked(x, y) {
					continue
				}
				m.SetObject(x, y, ObjectWall)
				blocked++
			}
		}
	}
	return m
}

// ClearArea removes objects and restores grass in the rectangle
// [x, x+w) × [y, y+h). Used to guarantee free start and destination
// pockets on generated maps.
func (m *Map) ClearArea(x, y, w, h int) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if m.InBounds(cx, cy) {
				m.SetObject(cx, cy, ObjectNone)
				m.SetGround(cx, cy, GroundGrass)
			}
		}
	}
}
