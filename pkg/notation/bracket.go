package notation

// BracketType is the kind of bracket drawn to the left of a staff.
type BracketType int

// Bracket types.
const (
	BracketNone BracketType = iota - 1
	BracketNormal
	BracketBrace
	BracketSquare
	BracketLine
)
