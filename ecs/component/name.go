package component

// Name is the actor identifier trigger plates match against.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
