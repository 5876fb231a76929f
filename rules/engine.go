package rules

import "github.com/plus3/blockbattle/piece"

// Phase is the lifecycle state of the piece in play.
type Phase uint8

const (
	PhaseSpawned Phase = iota
	PhaseFalling
	PhaseGrounded
	PhaseLocked
	PhaseToppedOut
)

var phaseNames = [...]string{"spawned", "falling", "grounded", "locked", "topped-out"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Active is the piece currently in play.
type Active struct {
	Kind     piece.Kind
	Rotation int
	X, Y     int
}

// Counters are the cumulative per-participant statistics.
type Counters struct {
	PiecesPlaced  int
	AttacksSent   int
	LinesCleared  int
	FinesseErrors int
}

// LockResult reports what a live lock did.
type LockResult struct {
	Kind     piece.Kind
	Lines    int
	Spin     bool
	AllClear bool
	// Attack is the raw attack before cancelling pending garbage.
	Attack int
	// Sent is what is left for the opponent after cancellation.
	Sent           int
	GarbageApplied int
	Streaks        Streaks
}

// finesseSlack is how many inputs over the minimum a placement may use before
// it counts as a finesse error.
const finesseSlack = 2

// Engine is one participant's live game: board, piece in play, hold, preview
// queue, streaks and pending garbage. It is not safe for concurrent use; the
// match loop owns it and the planner only reads copies of its state.
type Engine struct {
	cfg     Config
	board   *Board
	active  Active
	phase   Phase
	held    piece.Kind
	canHold bool
	bag     *Bag
	garbage GarbageQueue
	walker  *HoleWalker
	streaks Streaks
	stats   Counters

	lastRotation bool
	fallTimer    float64
	lockTimer    float64
	lockResets   int
	inputs       int
	outgoing     int
}

// NewEngine creates an engine whose piece sequence and garbage holes are
// driven by seed. Both participants of a match use the same seed. Call Spawn
// to bring the first piece into play.
func NewEngine(cfg Config, seed uint64) *Engine {
	cfg.Normalize()
	return &Engine{
		cfg:     cfg,
		board:   NewBoard(cfg.Width, cfg.Height),
		bag:     NewBag(seed, cfg.QueueHorizon),
		walker:  NewHoleWalker(cfg.Width, seed^0xda942042e4dd58b5, cfg.HoleWalk),
		streaks: NoStreaks(),
		canHold: true,
	}
}

func (e *Engine) Config() Config { return e.cfg }

// Board returns a copy of the live board.
func (e *Engine) Board() *Board { return e.board.Clone() }

func (e *Engine) Active() Active        { return e.active }
func (e *Engine) Phase() Phase          { return e.phase }
func (e *Engine) Held() piece.Kind      { return e.held }
func (e *Engine) CanHold() bool         { return e.canHold }
func (e *Engine) Queue() []piece.Kind   { return e.bag.Queue() }
func (e *Engine) Streaks() Streaks      { return e.streaks }
func (e *Engine) Counters() Counters    { return e.stats }
func (e *Engine) PiecesPlaced() int     { return e.stats.PiecesPlaced }
func (e *Engine) PendingGarbage() int   { return e.garbage.Total() }
func (e *Engine) ToppedOut() bool       { return e.phase == PhaseToppedOut }
func (e *Engine) LastWasRotation() bool { return e.lastRotation }

// PendingEntries returns a copy of the pending garbage entries.
func (e *Engine) PendingEntries() []GarbageEntry { return e.garbage.Entries() }

// Bag exposes the seeded randomizer for synchronization.
func (e *Engine) Bag() *Bag { return e.bag }

// Walker exposes the seeded garbage hole walker for synchronization.
func (e *Engine) Walker() *HoleWalker { return e.walker }

func (e *Engine) inPlay() bool {
	return e.phase == PhaseSpawned || e.phase == PhaseFalling || e.phase == PhaseGrounded
}

// Spawn brings the next queued piece into play. It returns false, and the
// engine tops out for good, when the spawn position is already blocked.
func (e *Engine) Spawn() bool {
	if e.phase == PhaseToppedOut {
		return false
	}
	e.canHold = true
	return e.enter(e.bag.Next())
}

func (e *Engine) enter(kind piece.Kind) bool {
	x, y := piece.Spawn(kind)
	e.active = Active{Kind: kind, X: x, Y: y}
	e.lastRotation = false
	e.fallTimer = 0
	e.lockTimer = 0
	e.lockResets = 0
	e.inputs = 0
	if !CanPlace(e.board, kind, 0, x, y) {
		e.phase = PhaseToppedOut
		return false
	}
	e.phase = PhaseSpawned
	e.updateGrounded()
	return true
}

// Hold swaps the piece in play with the hold slot, or stashes it and pulls the
// next queued piece when the slot is empty. Allowed once per spawn.
func (e *Engine) Hold() bool {
	if !e.inPlay() || !e.canHold {
		return false
	}
	current := e.active.Kind
	next := e.held
	if next == piece.None {
		next = e.bag.Next()
	}
	e.held = current
	e.enter(next)
	e.canHold = false
	return e.phase != PhaseToppedOut
}

// Valid reports whether the piece in play fits at the given rotation and anchor.
func (e *Engine) Valid(rotation, x, y int) bool {
	return CanPlace(e.board, e.active.Kind, rotation, x, y)
}

// Move shifts the piece dx columns if the destination is free.
func (e *Engine) Move(dx int) bool {
	if !e.inPlay() || !e.Valid(e.active.Rotation, e.active.X+dx, e.active.Y) {
		return false
	}
	e.active.X += dx
	e.lastRotation = false
	e.inputs++
	e.afterInput()
	return true
}

// Rotate turns the piece dir quarter turns (positive is clockwise), trying
// each kick offset in order.
func (e *Engine) Rotate(dir int) bool {
	if !e.inPlay() {
		return false
	}
	to := piece.Rotate(e.active.Rotation, dir)
	for _, k := range piece.Kicks(e.active.Kind, e.active.Rotation, to) {
		x, y := e.active.X+k.DX, e.active.Y+k.DY
		if e.Valid(to, x, y) {
			e.active.Rotation, e.active.X, e.active.Y = to, x, y
			e.lastRotation = true
			e.inputs++
			e.afterInput()
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row.
func (e *Engine) SoftDrop() bool {
	if !e.inPlay() || !e.Valid(e.active.Rotation, e.active.X, e.active.Y+1) {
		return false
	}
	e.active.Y++
	e.lastRotation = false
	e.updateGrounded()
	return true
}

// SetPosition teleports the piece in play. It fails when the target does
// not fit.
func (e *Engine) SetPosition(rotation, x, y int) bool {
	if !e.inPlay() || !e.Valid(rotation, x, y) {
		return false
	}
	e.active.Rotation, e.active.X, e.active.Y = rotation, x, y
	e.lastRotation = false
	e.updateGrounded()
	return true
}

// MarkRotation sets whether the last action counts as a rotation for spin
// crediting.
func (e *Engine) MarkRotation(rotated bool) {
	e.lastRotation = rotated
}

func (e *Engine) afterInput() {
	if e.phase == PhaseGrounded && e.lockResets < e.cfg.MaxLockResets {
		e.lockTimer = 0
		e.lockResets++
	}
	e.updateGrounded()
}

func (e *Engine) updateGrounded() {
	if e.Valid(e.active.Rotation, e.active.X, e.active.Y+1) {
		e.phase = PhaseFalling
		return
	}
	e.phase = PhaseGrounded
}

func (e *Engine) dropDistance() int {
	d := 0
	for e.Valid(e.active.Rotation, e.active.X, e.active.Y+d+1) {
		d++
	}
	return d
}

// Lock fixes the piece in play into the board, clears lines, scores the
// attack, cancels pending garbage and raises whatever garbage remains when no
// line was cleared. It returns false, topping the engine out, when the piece
// would be left above the visible board.
func (e *Engine) Lock() (LockResult, bool) {
	if !e.inPlay() {
		return LockResult{}, e.phase != PhaseToppedOut
	}
	a := e.active
	out, ok := ResolveLock(e.board, a.Kind, a.Rotation, a.X, a.Y, e.streaks, e.lastRotation)
	if !ok {
		e.phase = PhaseToppedOut
		return LockResult{}, false
	}

	e.trackFinesse()
	e.board = out.Board
	e.streaks = out.Streaks
	e.stats.PiecesPlaced++
	e.stats.LinesCleared += out.Lines

	res := LockResult{
		Kind:     a.Kind,
		Lines:    out.Lines,
		Spin:     out.Spin,
		AllClear: out.AllClear,
		Attack:   out.Attack,
		Streaks:  out.Streaks,
	}
	res.Sent = e.garbage.Cancel(out.Attack)
	if out.Lines == 0 && e.garbage.Len() > 0 {
		e.board, res.GarbageApplied = e.garbage.Apply(e.board, e.cfg.GarbageCap)
	}
	e.outgoing += res.Sent
	e.stats.AttacksSent += res.Sent
	e.phase = PhaseLocked
	return res, true
}

func (e *Engine) trackFinesse() {
	if e.inputs == 0 {
		return
	}
	spawnX, _ := piece.Spawn(e.active.Kind)
	dx := e.active.X - spawnX
	if dx < 0 {
		dx = -dx
	}
	turns := min(e.active.Rotation, piece.Rotations-e.active.Rotation)
	if e.inputs > min(dx, 2)+turns+finesseSlack {
		e.stats.FinesseErrors++
	}
}

// HardDrop drops the piece to the floor and locks it.
func (e *Engine) HardDrop() (LockResult, bool) {
	if !e.inPlay() {
		return LockResult{}, e.phase != PhaseToppedOut
	}
	if d := e.dropDistance(); d > 0 {
		e.active.Y += d
		e.lastRotation = false
	}
	return e.Lock()
}

// HardDropAndSpawn is the single fallback action: drop whatever is in play,
// lock it and spawn the next piece. It returns false on top-out.
func (e *Engine) HardDropAndSpawn() bool {
	if _, ok := e.HardDrop(); !ok {
		return false
	}
	return e.Spawn()
}

// Tick advances gravity and lock delay by dt seconds. It returns false once
// the engine has topped out.
func (e *Engine) Tick(dt float64) bool {
	if e.phase == PhaseToppedOut {
		return false
	}
	if e.phase == PhaseLocked {
		return e.Spawn()
	}
	if e.phase == PhaseFalling || e.phase == PhaseSpawned {
		e.fallTimer += dt
		step := 1 / e.cfg.Gravity
		for e.fallTimer >= step {
			e.fallTimer -= step
			if !e.Valid(e.active.Rotation, e.active.X, e.active.Y+1) {
				break
			}
			e.active.Y++
			e.lastRotation = false
		}
		e.updateGrounded()
		return true
	}

	e.lockTimer += dt
	if e.lockTimer < e.cfg.LockDelay {
		return true
	}
	if _, ok := e.Lock(); !ok {
		return false
	}
	return e.Spawn()
}

// ReceiveGarbage queues an incoming attack as one or more pending entries.
func (e *Engine) ReceiveGarbage(lines int) {
	for _, entry := range e.walker.Entries(lines) {
		e.garbage.Push(entry)
	}
}

// TakeOutgoing returns and resets the attack accumulated for the opponent.
func (e *Engine) TakeOutgoing() int {
	n := e.outgoing
	e.outgoing = 0
	return n
}
