package component

// TriggerPlate is an armed pressure plate. It consumes itself when an
// actor whose Name matches Target exactly enters its cell; any other
// actor is ignored.
type TriggerPlate struct {
	Target     string
	Script     string  // optional tengo hook run once at consume time
	RiseY      float64 // world units the sprite rises during phase one
	RiseFrames int
	FadeFrames int
}

// TriggerPhase identifies the stage of a consumed plate's animation.
type TriggerPhase int

const (
	PlateRise TriggerPhase = iota
	PlateFade
)

// TriggerRuntime exists only once a plate has been consumed. Its
// presence is the consumed latch: further contacts are ignored, so the
// armed-to-consumed transition happens at most once.
type TriggerRuntime struct {
	Phase TriggerPhase
	Timer int
	BaseY float64
}

var TriggerPlateComponent = NewComponent[TriggerPlate]()
var TriggerRuntimeComponent = NewComponent[TriggerRuntime]()
