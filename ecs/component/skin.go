package component

// Skin names the texture an entity should render with, plus a pixel
// offset. Pure presentation; no game logic reads it.
type Skin struct {
	Name    string
	OffsetX float64
	OffsetY float64
}

// SkinRuntime tracks two-phase skin application. The skin system
// resolves the named texture from the render registry once it exists
// and only then writes the sprite; until then the assignment stays
// pending. Changing Skin.Name re-resolves on the next tick.
type SkinRuntime struct {
	Initialized bool
	Applied     string
}

var SkinComponent = NewComponent[Skin]()
var SkinRuntimeComponent = NewComponent[SkinRuntime]()
