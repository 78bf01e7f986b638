package component

import "github.com/milk9111/tactics/board"

// Walker configures a unit that can walk the board.
type Walker struct {
	Speed float64 // world units per second
	Range int     // max path length in cells, enforced at selection time
}

// WalkRuntime is the transient state of an in-progress walk. Its
// presence on an entity is what registers the entity with the walk
// system; idle units carry no WalkRuntime and cost nothing per tick.
// Added by system.StartWalk, removed on arrival.
type WalkRuntime struct {
	Path     *board.Path
	Traveled float64
}

var WalkerComponent = NewComponent[Walker]()
var WalkRuntimeComponent = NewComponent[WalkRuntime]()
