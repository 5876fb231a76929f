package rules

import "github.com/plus3/blockbattle/piece"

const (
	allClearAttack       = 8
	allClearTetrisAttack = 10
	comboBonusFrom       = 4
)

var (
	tSpinAttack = [4]int{0, 2, 4, 6}
	// Non-spin doubles are deliberately worth no more than singles.
	clearAttack = [5]int{0, 0, 0, 1, 2}
)

// BaseAttack is the garbage a clear sends before back-to-back and combo
// bonuses.
func BaseAttack(lines int, spin, allClear bool, kind piece.Kind) int {
	if lines <= 0 {
		return 0
	}
	if allClear {
		if lines >= 4 {
			return allClearTetrisAttack
		}
		return allClearAttack
	}
	if spin {
		if kind == piece.T {
			return tSpinAttack[min(lines, 3)]
		}
		return lines
	}
	return clearAttack[min(lines, 4)]
}

// Streaks holds the combo and back-to-back counters. Combo is -1 when no
// streak is active; B2B is 0 when inactive.
type Streaks struct {
	Combo int
	B2B   int
}

// NoStreaks is the state at the start of a match.
func NoStreaks() Streaks {
	return Streaks{Combo: -1}
}

// Qualifies reports whether a clear keeps a back-to-back chain alive.
func Qualifies(lines int, spin bool) bool {
	return lines >= 4 || (spin && lines > 0)
}

// Resolve advances the counters for a lock that cleared lines (possibly 0)
// and returns the bonus attack the streaks earn.
func (s Streaks) Resolve(lines int, spin bool) (Streaks, int) {
	if lines <= 0 {
		return Streaks{Combo: -1, B2B: 0}, 0
	}
	next := s
	bonus := 0
	next.Combo++
	if Qualifies(lines, spin) {
		if s.B2B > 0 {
			bonus++
		}
		next.B2B++
	} else {
		next.B2B = 0
	}
	if next.Combo >= comboBonusFrom {
		bonus++
	}
	return next, bonus
}

// LockOutcome is everything a single lock produces.
type LockOutcome struct {
	Board    *Board
	Lines    int
	Spin     bool
	AllClear bool
	Attack   int
	Streaks  Streaks
}

// ResolveLock stamps a piece, detects a spin, clears lines and scores the
// attack. spinAllowed gates spin crediting; the live engine passes whether the
// last input was a rotation while the planner passes true. The second result
// is false when the placement is illegal.
func ResolveLock(b *Board, kind piece.Kind, rotation, x, y int, prev Streaks, spinAllowed bool) (LockOutcome, bool) {
	placed, ok := Place(b, kind, rotation, x, y)
	if !ok {
		return LockOutcome{}, false
	}
	cleared, lines := ClearFullLines(placed)
	spin := spinAllowed && IsSpin(placed, kind, x, y, lines)
	allClear := lines > 0 && IsAllClear(cleared)
	streaks, bonus := prev.Resolve(lines, spin)
	return LockOutcome{
		Board:    cleared,
		Lines:    lines,
		Spin:     spin,
		AllClear: allClear,
		Attack:   BaseAttack(lines, spin, allClear, kind) + bonus,
		Streaks:  streaks,
	}, true
}
