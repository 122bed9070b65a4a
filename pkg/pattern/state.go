package pattern

// parserState tracks whether the scanner is inside a {...} group.
// Groups do not nest: any { enters stateInGroup and any } leaves it.
type parserState int

const (
	stateNormal parserState = iota
	stateInGroup
)
