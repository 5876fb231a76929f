package analysis

// Delta is after minus before for the fields the scorer tracks as damage or
// repair. Positive values mean the feature grew.
type Delta struct {
	Holes           int
	HoleDepth       int
	Cavities        int
	Bumpiness       int
	MaxHeight       int
	AggregateHeight int
	WellCells       int
	RowTransitions  int
	ColTransitions  int
	SpinSlots       int
	NearFullRows    int
}

// Diff compares two analyses of the same board size.
func Diff(before, after Analysis) Delta {
	return Delta{
		Holes:           after.Holes - before.Holes,
		HoleDepth:       after.HoleDepth - before.HoleDepth,
		Cavities:        after.Cavities - before.Cavities,
		Bumpiness:       after.Bumpiness - before.Bumpiness,
		MaxHeight:       after.MaxHeight - before.MaxHeight,
		AggregateHeight: after.AggregateHeight - before.AggregateHeight,
		WellCells:       after.WellCells - before.WellCells,
		RowTransitions:  after.RowTransitions - before.RowTransitions,
		ColTransitions:  after.ColTransitions - before.ColTransitions,
		SpinSlots:       after.SpinSlots - before.SpinSlots,
		NearFullRows:    after.NearFullRows - before.NearFullRows,
	}
}

// Damaging reports whether the placement created any new hole or cavity.
func (d Delta) Damaging() bool {
	return d.Holes > 0 || d.Cavities > 0
}
