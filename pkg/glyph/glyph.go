// Package glyph generates the deterministic daily art pattern.
//
// Every calendar day maps to one glyph: a 20×20 grid of painted/unpainted
// cells plus a single accent color. The glyph is a pure function of the
// date key — the same key yields a bit-identical glyph on every machine,
// every session, every release. Nothing here is persisted; glyphs are
// recomputed on demand.
//
// All randomness derives from a 32-bit seed hashed from the date key. A
// mulberry32 stream provides the day-global parameters (palette index,
// pattern mode, density, wave shape, focus point) and a stateless per-cell
// noise hash provides local texture. The order of draws from the stream is
// part of the contract: reordering them would change every glyph.
package glyph

import (
	"fmt"
	"math"
)

// GridSize is the side length of the glyph grid.
const GridSize = 20

// CellCount is the total number of cells in a glyph.
const CellCount = GridSize * GridSize

// ModeCount is the number of blend modes a day can draw.
const ModeCount = 5

// Palette is the fixed set of accent colors, indexed by the first stream
// draw of the day. Entries are hex colors usable by both terminal and
// image renderers.
var Palette = [9]string{
	"#e07a5f", // terracotta
	"#3d405b", // ink
	"#81b29a", // sage
	"#f2cc8f", // sand
	"#6d597a", // plum
	"#b56576", // rose
	"#355070", // midnight
	"#eaac8b", // salmon
	"#4f772d", // moss
}

// Cell is one position in the glyph grid. Derived, never stored.
type Cell struct {
	ID      string `json:"id"` // "<dateKey>-<index>", unique per glyph
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Painted bool   `json:"painted"`
}

// Art is a generated glyph: the full cell grid and the day's accent color.
type Art struct {
	Cells [CellCount]Cell `json:"cells"`
	Color string          `json:"color"`
	Mode  int             `json:"mode"`
}

// params holds the day-global values drawn from the seeded stream.
// Field order mirrors draw order; see Generate.
type params struct {
	colorIdx    int
	mode        int
	baseDensity float64
	clusterSize int
	freq1       float64
	freq2       float64
	phase1      float64
	phase2      float64
	centerX     float64
	centerY     float64
	radius      float64
}

// Noise salts. Fine texture, blocky cluster texture and the threshold
// jitter must sample independent noise fields.
const (
	saltFine    = 1
	saltCluster = 2
	saltJitter  = 3
)

// Generate computes the glyph for dateKey. It is total over non-empty
// strings and fully deterministic.
func Generate(dateKey string) Art {
	seed := HashSeed(dateKey)
	p := drawParams(NewGenerator(seed))

	art := Art{
		Color: Palette[p.colorIdx],
		Mode:  p.mode,
	}

	for i := 0; i < CellCount; i++ {
		x := i % GridSize
		y := i / GridSize
		nx := float64(x) / float64(GridSize-1)
		ny := float64(y) / float64(GridSize-1)

		fine := CellNoise(seed, x, y, saltFine)
		cluster := CellNoise(seed, x/p.clusterSize, y/p.clusterSize, saltCluster)
		wave := waveSignal(nx, ny, p)
		radial := radialSignal(nx, ny, p)
		diagonal := 1 - math.Abs(nx-ny)

		intensity := blend(p.mode, fine, cluster, wave, radial, diagonal)
		threshold := p.baseDensity * (0.86 + CellNoise(seed, x, y, saltJitter)*0.28)

		art.Cells[i] = Cell{
			ID:      fmt.Sprintf("%s-%d", dateKey, i),
			X:       x,
			Y:       y,
			Painted: intensity > threshold,
		}
	}
	return art
}

// drawParams consumes the day's parameters from the stream in fixed order.
func drawParams(next func() float64) params {
	return params{
		colorIdx:    int(next() * float64(len(Palette))),
		mode:        int(next() * ModeCount),
		baseDensity: 0.16 + next()*0.68,
		clusterSize: 2 + int(next()*5),
		freq1:       0.8 + next()*3.8,
		freq2:       0.8 + next()*3.8,
		phase1:      next() * 2 * math.Pi,
		phase2:      next() * 2 * math.Pi,
		centerX:     next(),
		centerY:     next(),
		radius:      0.35 + next()*0.45,
	}
}

// waveSignal averages two phase-shifted oscillations over the normalized
// coordinates and remaps the result from [-1,1] to [0,1].
func waveSignal(nx, ny float64, p params) float64 {
	w1 := math.Sin(nx*p.freq1*math.Pi + p.phase1)
	w2 := math.Cos(ny*p.freq2*math.Pi + p.phase2)
	return ((w1+w2)/2 + 1) / 2
}

// radialSignal falls off linearly from the day's focus point and clips to
// zero outside the drawn radius.
func radialSignal(nx, ny float64, p params) float64 {
	dist := math.Hypot(nx-p.centerX, ny-p.centerY)
	if dist >= p.radius {
		return 0
	}
	return 1 - dist/p.radius
}

// blend applies the mode's fixed weighted sum. Weights sum to 1 per mode.
func blend(mode int, fine, cluster, wave, radial, diagonal float64) float64 {
	switch mode {
	case 0:
		return 0.52*wave + 0.30*cluster + 0.18*fine
	case 1:
		return 0.52*radial + 0.28*wave + 0.20*fine
	case 2:
		return 0.50*diagonal + 0.30*cluster + 0.20*fine
	case 3:
		return 0.70*cluster + 0.30*fine
	default:
		return 0.40*wave + 0.35*radial + 0.25*cluster
	}
}

// PaintedCount returns how many cells of the glyph are painted.
func (a Art) PaintedCount() int {
	n := 0
	for _, c := range a.Cells {
		if c.Painted {
			n++
		}
	}
	return n
}
