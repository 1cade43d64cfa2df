package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodCompleteMultipartite is the canonical name for the CompleteMultipartite constructor.
	MethodCompleteMultipartite = "CompleteMultipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: hub + C3.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
const MinGridDim = 1

// MinCompleteNodes is the smallest size for K_n.
const MinCompleteNodes = 1

// MinPartitionSize is the smallest size of one side of a (multi)partite graph.
const MinPartitionSize = 1

// MinPartitions is the smallest number of parts for CompleteMultipartite.
const MinPartitions = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse.
const MaxProbability = 1.0
