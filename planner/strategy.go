package planner

import "github.com/plus3/blockbattle/piece"

// Strategy is the high-level objective that re-weights scoring.
type Strategy uint8

const (
	Balanced Strategy = iota
	Opener
	SpinBuild
	SpinConvert
	Downstack
)

var strategyNames = [...]string{"balanced", "opener", "spin-build", "spin-convert", "downstack"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// SpinOriented reports whether the strategy works toward spin clears.
func (s Strategy) SpinOriented() bool {
	return s == SpinBuild || s == SpinConvert
}

const (
	// lowDanger is the pressure under which the planner plays for shape.
	lowDanger = 0.6
	// emergencyDanger forces downstacking.
	emergencyDanger = 1.35
	openerPieces    = 12
	lookaheadPieces = 5
	deepEdgeWell    = 4
)

// StrategyInput is everything strategy selection looks at.
type StrategyInput struct {
	Danger        float64
	Pending       int
	Holes         int
	Combo         int
	PiecesPlaced  int
	NearFullRows  int
	SpinSlots     int
	EdgeWellDepth int
	EdgeWellHoles int

	Active piece.Kind
	Held   piece.Kind
	Queue  []piece.Kind
	// Previous is the strategy chosen last cycle.
	Previous Strategy
}

// imminent reports whether kind is in play, held or within the next few
// queued pieces.
func (in StrategyInput) imminent(kind piece.Kind) bool {
	if in.Active == kind || in.Held == kind {
		return true
	}
	for i, k := range in.Queue {
		if i >= lookaheadPieces {
			break
		}
		if k == kind {
			return true
		}
	}
	return false
}

// SelectStrategy picks the objective for this decision cycle. Emergencies
// come first, then combo upkeep, the opener, and spin play.
func SelectStrategy(in StrategyInput) Strategy {
	s := selectBase(in)

	if s != Downstack && in.Previous.SpinOriented() && !s.SpinOriented() &&
		in.Danger < lowDanger && in.Holes <= 2 {
		s = in.Previous
	}
	if in.EdgeWellDepth >= deepEdgeWell && in.EdgeWellHoles == 0 &&
		in.SpinSlots == 0 && in.Danger < lowDanger {
		s = SpinBuild
	}
	return s
}

func selectBase(in StrategyInput) Strategy {
	switch {
	case in.Danger > emergencyDanger || in.Pending >= 5 || in.Holes >= 4:
		return Downstack
	case in.Combo >= 0 && (in.NearFullRows > 0 || in.Holes > 0 || in.Pending > 0):
		return Downstack
	case in.PiecesPlaced <= openerPieces:
		return Opener
	}

	spinPiece := in.imminent(piece.T)
	switch {
	case in.SpinSlots > 0 && spinPiece:
		return SpinConvert
	case (in.SpinSlots == 0 && spinPiece) || !in.imminent(piece.I):
		return SpinBuild
	}
	return Balanced
}
