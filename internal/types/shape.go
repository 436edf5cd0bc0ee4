package types

// Shape selects which wire representation a handler renders for an action.
type Shape int

const (
	// ShapeFlat renders scalar fields with references as ids.
	ShapeFlat Shape = iota
	// ShapeRead expands references and nests owned children.
	ShapeRead
	// ShapeCreate echoes a nested create: flat fields plus the created children.
	ShapeCreate
)

func (s Shape) String() string {
	switch s {
	case ShapeRead:
		return "read"
	case ShapeCreate:
		return "create"
	default:
		return "flat"
	}
}
