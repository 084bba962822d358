package builder

// Canonical constructor names, used to prefix errors.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodFan          = "Fan"
	methodKTree        = "KTree"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// CenterVertexID is the identifier of the hub vertex in Star, Wheel and Fan.
const CenterVertexID = "Center"

// Minimum sizes per constructor.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minFanNodes      = 3
	minKTreeK        = 1
	minGridDim       = 1
	minRandomNodes   = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// gridIDFmt renders a grid coordinate as "r,c".
const gridIDFmt = "%d,%d"
