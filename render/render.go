// Package render draws weight and cost heatmaps of a grid as PNG images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrBadScale indicates a non-positive pixels-per-cell scale.
	ErrBadScale = errors.New("render: scale must be positive")

	// ErrShapeMismatch indicates a cost table whose shape differs from the grid.
	ErrShapeMismatch = errors.New("render: cost table does not match grid shape")
)

// Unsettled is drawn for cells whose cost is math.MaxInt64.
var Unsettled = color.Black

// Weights paints each cell with a green→red gradient over the grid's weight range.
// Each cell becomes a scale×scale square.
func Weights(g *gridgraph.GridGraph, scale int) (image.Image, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rows := g.Rows()
	values := make([][]int64, g.Height)
	for y := range values {
		values[y] = make([]int64, g.Width)
		for x, w := range rows[y] {
			values[y][x] = int64(w)
		}
	}

	return paint(g.Width, g.Height, values, scale)
}

// Costs paints each cell with a green→red gradient over the settled costs;
// cells holding math.MaxInt64 are painted Unsettled.
func Costs(g *gridgraph.GridGraph, costs [][]int64, scale int) (image.Image, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(costs) != g.Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrShapeMismatch, len(costs), g.Height)
	}
	for y, row := range costs {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, y, len(row), g.Width)
		}
	}

	return paint(g.Width, g.Height, costs, scale)
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: saving %s: %w", path, err)
	}

	return nil
}

func paint(w, h int, values [][]int64, scale int) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, scale)
	}

	lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
	for _, row := range values {
		for _, v := range row {
			if v == math.MaxInt64 {
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	dc := gg.NewContext(w*scale, h*scale)
	dc.SetColor(color.White)
	dc.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := values[y][x]
			if v == math.MaxInt64 {
				dc.SetColor(Unsettled)
			} else {
				dc.SetColor(gradient(v, lo, hi))
			}
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	return dc.Image(), nil
}

// gradient maps v in [lo, hi] onto green → yellow → red.
func gradient(v, lo, hi int64) color.RGBA {
	if hi == lo {
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	}
	t := float64(v-lo) / float64(hi-lo)
	if t < 0.5 {
		return color.RGBA{R: uint8(t * 2 * 255), G: 255, B: 0, A: 255}
	}

	return color.RGBA{R: 255, G: uint8((1 - t) * 2 * 255), B: 0, A: 255}
}
