package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dropbar/common"
)

// DrawBarPart fills a size x size square with its left edge at x and its
// vertical centre at y.
func DrawBarPart(dst *ebiten.Image, x, y, size float64, clr color.Color) {
	if dst == nil || size <= 0 {
		return
	}
	vector.FillRect(dst, float32(x), float32(y-size/2), float32(size), float32(size), clr, false)
}

// DrawBarParts draws every part of one column. All parts derive their
// offset from the same scale; the stagger comes from common.DivideScale.
func DrawBarParts(dst *ebiten.Image, x, scale, size, h float64, parts int, clr color.Color) {
	for i := 0; i < parts; i++ {
		DrawBarPart(dst, x, common.BarPartY(i, scale, size, h, parts), size, clr)
	}
}
