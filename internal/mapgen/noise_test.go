package mapgen

import (
	"math"
	"testing"
)

func fieldDimensions(t *testing.T, field [][]float64, width, height int) {
	t.Helper()
	if len(field) != width {
		t.Fatalf("field width = %d, want %d", len(field), width)
	}
	for x, col := range field {
		if len(col) != height {
			t.Fatalf("field[%d] height = %d, want %d", x, len(col), height)
		}
	}
}

func fieldInUnitRange(t *testing.T, name string, field [][]float64) {
	t.Helper()
	for x, col := range field {
		for y, v := range col {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%s[%d][%d] = %v, want within [0, 1]", name, x, y, v)
			}
		}
	}
}

func TestNoiseFieldsShapeAndRange(t *testing.T) {
	g := New(Duel().WithSeed(11))
	width, height := g.Config().Size.Dimensions()

	fields := map[string][][]float64{
		"height":      g.HeightField(),
		"temperature": g.TemperatureField(),
		"moisture":    g.MoistureField(),
	}
	for name, field := range fields {
		fieldDimensions(t, field, width, height)
		fieldInUnitRange(t, name, field)
	}
}

func TestNoiseFieldsDeterministic(t *testing.T) {
	a := New(Duel().WithSeed(99))
	b := New(Duel().WithSeed(99))

	pairs := [][2][][]float64{
		{a.HeightField(), b.HeightField()},
		{a.TemperatureField(), b.TemperatureField()},
		{a.MoistureField(), b.MoistureField()},
	}
	for i, p := range pairs {
		for x := range p[0] {
			for y := range p[0][x] {
				if p[0][x][y] != p[1][x][y] {
					t.Fatalf("field %d differs at (%d, %d): %v vs %v",
						i, x, y, p[0][x][y], p[1][x][y])
				}
			}
		}
	}
}

func TestHeightFieldSeedSensitivity(t *testing.T) {
	a := New(Duel().WithSeed(1)).HeightField()
	b := New(Duel().WithSeed(2)).HeightField()

	differing := 0
	for x := range a {
		for y := range a[x] {
			if a[x][y] != b[x][y] {
				differing++
			}
		}
	}
	if differing == 0 {
		t.Error("different seeds produced identical height fields")
	}
}

func TestHeightFieldEdgeFalloff(t *testing.T) {
	g := New(Standard().WithSeed(5))
	field := g.HeightField()
	width, height := g.Config().Size.Dimensions()

	// Corners sit at the maximum falloff distance and must bottom out.
	for _, c := range [][2]int{{0, 0}, {width - 1, 0}, {0, height - 1}, {width - 1, height - 1}} {
		if v := field[c[0]][c[1]]; v > 0.05 {
			t.Errorf("corner (%d, %d) height = %v, want near zero", c[0], c[1], v)
		}
	}
}

func TestTemperatureWarmerAtEquator(t *testing.T) {
	g := New(Standard().WithSeed(3))
	field := g.TemperatureField()
	width, height := g.Config().Size.Dimensions()

	var equator, poles float64
	for x := 0; x < width; x++ {
		equator += field[x][height/2]
		poles += (field[x][0] + field[x][height-1]) / 2
	}
	equator /= float64(width)
	poles /= float64(width)

	if equator <= poles {
		t.Errorf("mean equator temperature %v should exceed mean pole temperature %v",
			equator, poles)
	}
}

func TestTemperaturePerturbationBounded(t *testing.T) {
	g := New(Standard().WithSeed(8))
	field := g.TemperatureField()
	_, height := g.Config().Size.Dimensions()

	// Each cell sits within the perturbation scale of its latitude
	// gradient (before clamping narrows the range further).
	for x, col := range field {
		for y, v := range col {
			base := 1 - math.Abs(float64(y)/float64(height)-0.5)*2
			lo := math.Max(0, base-tempNoiseScale)
			hi := math.Min(1, base+tempNoiseScale)
			if v < lo-1e-9 || v > hi+1e-9 {
				t.Fatalf("temperature[%d][%d] = %v outside [%v, %v] around gradient %v",
					x, y, v, lo, hi, base)
			}
		}
	}
}

func TestNormalizeField(t *testing.T) {
	field := [][]float64{{2, 4}, {6, 10}}
	normalizeField(field)

	want := [][]float64{{0, 0.25}, {0.5, 1}}
	for x := range want {
		for y := range want[x] {
			if math.Abs(field[x][y]-want[x][y]) > 1e-12 {
				t.Errorf("normalized[%d][%d] = %v, want %v", x, y, field[x][y], want[x][y])
			}
		}
	}
}

func TestNormalizeFieldUniform(t *testing.T) {
	field := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	normalizeField(field)

	for x := range field {
		for y := range field[x] {
			if field[x][y] != 0.5 {
				t.Errorf("uniform field rescaled: [%d][%d] = %v", x, y, field[x][y])
			}
		}
	}
}
