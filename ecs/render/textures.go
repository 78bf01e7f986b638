package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BuildBoardTextures registers the procedural textures the shipped
// board references from its prefab skins. Sized to the grid cell so
// sprites line up with cell centers without extra scaling.
func BuildBoardTextures(cellSize float64) {
	size := int(cellSize)
	if size < 8 {
		size = 8
	}

	unit := ebiten.NewImage(size, size)
	half := float32(size) / 2
	vector.DrawFilledCircle(unit, half, half, half*0.72, color.NRGBA{R: 0x3f, G: 0x8f, B: 0xe0, A: 0xff}, true)
	vector.StrokeCircle(unit, half, half, half*0.72, 2, color.NRGBA{R: 0xe8, G: 0xf2, B: 0xff, A: 0xff}, true)
	RegisterImage("unit", unit)

	enemy := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(enemy, half, half, half*0.72, color.NRGBA{R: 0xc0, G: 0x45, B: 0x3c, A: 0xff}, true)
	vector.StrokeCircle(enemy, half, half, half*0.72, 2, color.NRGBA{R: 0xff, G: 0xe2, B: 0xdd, A: 0xff}, true)
	RegisterImage("enemy", enemy)

	plate := ebiten.NewImage(size, size)
	inset := float32(size) * 0.18
	vector.DrawFilledRect(plate, inset, inset, float32(size)-2*inset, float32(size)-2*inset, color.NRGBA{R: 0xd8, G: 0xb4, B: 0x3a, A: 0xff}, true)
	vector.StrokeRect(plate, inset, inset, float32(size)-2*inset, float32(size)-2*inset, 2, color.NRGBA{R: 0x6b, G: 0x58, B: 0x14, A: 0xff}, true)
	RegisterImage("plate", plate)
}
