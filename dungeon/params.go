package dungeon

// GenerateParameter configures one Generate invocation. Only
// MaxSeparationIterations and EdgeReinsertionProbability fall back to a
// default when zero (and NumberOfCandidateFloors below 1 is treated as 1);
// every other field is used as given, so callers typically start from
// DefaultGenerateParameter and override select fields.
type GenerateParameter struct {
	// RandomSeed is a 32-bit seed; 0 means "choose from the wall clock".
	// The resulting nonzero seed is surfaced back through Generator.Seed
	// for reproducibility.
	RandomSeed uint32

	// NumberOfCandidateFloors is the count of distinct z-levels room
	// centers are sampled from.
	NumberOfCandidateFloors int

	// NumberOfCandidateRooms is N for the phase-1 room draw.
	NumberOfCandidateRooms int

	MinRoomWidth, MaxRoomWidth   int
	MinRoomDepth, MaxRoomDepth   int
	MinRoomHeight, MaxRoomHeight int

	// HorizontalRoomMargin is the number of cells added between rooms
	// during separation.
	HorizontalRoomMargin int

	// VerticalRoomMargin is the number of cells between sampled floor
	// levels.
	VerticalRoomMargin int

	// MergeRooms, when true, suppresses the wall that would otherwise
	// separate two adjacent same-height rooms.
	MergeRooms bool

	// MaxSeparationIterations caps phase-2's overlap-resolution loop.
	// Zero selects the default hard cap of 256.
	MaxSeparationIterations int

	// EdgeReinsertionProbability is the probability p with which a
	// triangulation edge discarded by the MST is reinserted to create
	// loops. Zero selects the default of 0.04.
	EdgeReinsertionProbability float64
}

// DefaultGenerateParameter returns a GenerateParameter with reasonable
// defaults for a small-to-medium dungeon.
func DefaultGenerateParameter() GenerateParameter {
	return GenerateParameter{
		RandomSeed:                 0,
		NumberOfCandidateFloors:    1,
		NumberOfCandidateRooms:     16,
		MinRoomWidth:               3,
		MaxRoomWidth:               8,
		MinRoomDepth:               3,
		MaxRoomDepth:               8,
		MinRoomHeight:              2,
		MaxRoomHeight:              3,
		HorizontalRoomMargin:       1,
		VerticalRoomMargin:         2,
		MergeRooms:                 false,
		MaxSeparationIterations:    256,
		EdgeReinsertionProbability: 0.04,
	}
}

func (p GenerateParameter) maxSeparationIterations() int {
	if p.MaxSeparationIterations <= 0 {
		return 256
	}
	return p.MaxSeparationIterations
}

func (p GenerateParameter) edgeReinsertionProbability() float64 {
	if p.EdgeReinsertionProbability <= 0 {
		return 0.04
	}
	return p.EdgeReinsertionProbability
}
