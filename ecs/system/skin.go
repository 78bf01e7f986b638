package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
	"github.com/milk9111/tactics/ecs/render"
)

// SkinSystem applies Skin components to sprites in two phases: the
// assignment stays pending until the named texture exists in the
// render registry, then the sprite is written in a single post-init
// step. A changed Skin.Name re-applies the same way.
type SkinSystem struct {
	lookup func(name string) *ebiten.Image
}

// NewSkinSystem creates a skin system. lookup defaults to the render
// registry; tests substitute their own.
func NewSkinSystem(lookup func(name string) *ebiten.Image) *SkinSystem {
	if lookup == nil {
		lookup = render.GetImage
	}
	return &SkinSystem{lookup: lookup}
}

func (s *SkinSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.SkinComponent, func(e ecs.Entity, skin *component.Skin) {
		rt, ok := ecs.Get(w, e, component.SkinRuntimeComponent)
		if !ok {
			rt = &component.SkinRuntime{}
			_ = ecs.Add(w, e, component.SkinRuntimeComponent, rt)
		}
		if rt.Initialized && rt.Applied == skin.Name {
			return
		}

		img := s.lookup(skin.Name)
		if img == nil {
			// texture not registered yet; keep the assignment pending
			return
		}

		if sp, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			sp.Image = img
			sp.OffsetX = skin.OffsetX
			sp.OffsetY = skin.OffsetY
		} else {
			_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
				Image:   img,
				OffsetX: skin.OffsetX,
				OffsetY: skin.OffsetY,
				Alpha:   1,
			})
		}
		rt.Initialized = true
		rt.Applied = skin.Name
	})
}
