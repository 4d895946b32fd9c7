package dungeon

// Component is the kind of a single map cell.
type Component int

const (
	Corridor Component = iota // open passage; every cell starts here before carving
	Wall
	Room
)

// String returns the string representation of a Component
func (c Component) String() string {
	switch c {
	case Corridor:
		return "corridor"
	case Wall:
		return "wall"
	case Room:
		return "room"
	default:
		return "unknown"
	}
}

// Open reports whether the cell can be walked through.
func (c Component) Open() bool {
	return c == Corridor || c == Room
}

// Rune returns the character used by the ASCII preview.
func (c Component) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Corridor:
		return '+'
	case Room:
		return '.'
	default:
		return '?'
	}
}

// ComponentFromRune is the inverse of Rune.
func ComponentFromRune(r rune) (Component, bool) {
	switch r {
	case '#':
		return Wall, true
	case '+':
		return Corridor, true
	case '.':
		return Room, true
	default:
		return 0, false
	}
}
