package render

import "github.com/hajimehoshi/ebiten/v2"

var images = map[string]*ebiten.Image{}

// RegisterImage stores a texture by name.
func RegisterImage(name string, img *ebiten.Image) {
	if name == "" || img == nil {
		return
	}
	images[name] = img
}

// GetImage returns a registered texture, or nil if the name is unknown.
func GetImage(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	return images[name]
}
