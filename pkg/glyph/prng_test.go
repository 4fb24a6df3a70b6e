package glyph

import "testing"

func TestHashSeed(t *testing.T) {
	// Known values pin the hash so a refactor cannot silently change every
	// glyph ever generated.
	tests := []struct {
		in   string
		want uint32
	}{
		{"2024-01-01", 1395918025},
		{"2024-02-29", 1859561356},
		{"2023-12-31", 2918219123},
		{"hello", 1335831723},
	}
	for _, tt := range tests {
		if got := HashSeed(tt.in); got != tt.want {
			t.Errorf("HashSeed(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHashSeedDeterministic(t *testing.T) {
	for _, s := range []string{"", "a", "2024-06-15", "日記"} {
		if HashSeed(s) != HashSeed(s) {
			t.Errorf("HashSeed(%q) not deterministic", s)
		}
	}
}

func TestNewGeneratorKnownStream(t *testing.T) {
	// mulberry32 draws are exact dyadic rationals, so exact comparison is safe.
	want := []float64{
		0.62707394058816135,
		0.0027357211802154779,
		0.52744703995995224,
		0.98105096747167408,
		0.96837789821438491,
	}
	next := NewGenerator(1)
	for i, w := range want {
		if got := next(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestNewGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(HashSeed("2024-01-01"))
	b := NewGenerator(HashSeed("2024-01-01"))
	for i := 0; i < 100; i++ {
		va, vb := a(), b()
		if va != vb {
			t.Fatalf("draw %d diverged: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d = %v outside [0,1)", i, va)
		}
	}
}

func TestNewGeneratorSeedsDiffer(t *testing.T) {
	a := NewGenerator(1)
	b := NewGenerator(2)
	same := true
	for i := 0; i < 10; i++ {
		if a() != b() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestCellNoise(t *testing.T) {
	seed := HashSeed("2024-01-01")

	// Deterministic and order-independent: value for a cell does not depend
	// on evaluation order.
	first := CellNoise(seed, 5, 7, saltFine)
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			v := CellNoise(seed, x, y, saltFine)
			if v < 0 || v >= 1 {
				t.Fatalf("CellNoise(%d,%d) = %v outside [0,1)", x, y, v)
			}
		}
	}
	if CellNoise(seed, 5, 7, saltFine) != first {
		t.Error("CellNoise changed after other cells were evaluated")
	}

	// Salts select independent noise fields.
	if CellNoise(seed, 3, 3, saltFine) == CellNoise(seed, 3, 3, saltJitter) {
		t.Error("different salts should produce different noise")
	}
}
