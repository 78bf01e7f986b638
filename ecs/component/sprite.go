package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite draws an image centered on the entity's transform, nudged by
// OffsetX/OffsetY pixels. Alpha of 0 is treated as opaque so sprites
// built without an explicit alpha render normally.
type Sprite struct {
	Image   *ebiten.Image
	OffsetX float64
	OffsetY float64
	Alpha   float64
}

var SpriteComponent = NewComponent[Sprite]()
