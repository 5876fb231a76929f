package planner

// Weights are the scorer's linear coefficients. Penalty weights are stored as
// positive magnitudes and subtracted.
type Weights struct {
	Attack      float64    `yaml:"attack"`
	Lines       float64    `yaml:"lines"`
	SpinFlat    float64    `yaml:"spin_flat"`
	SpinPerLine [4]float64 `yaml:"spin_per_line"`
	B2B         float64    `yaml:"b2b"`
	Combo       float64    `yaml:"combo"`
	AllClear    float64    `yaml:"all_clear"`
	Tetris      float64    `yaml:"tetris"`
	EdgeWell    float64    `yaml:"edge_well"`
	SpinSlot    float64    `yaml:"spin_slot"`
	SpinSlotUp  float64    `yaml:"spin_slot_delta"`
	Cancel      float64    `yaml:"cancel"`

	Holes           float64 `yaml:"holes"`
	HoleDepth       float64 `yaml:"hole_depth"`
	Cavities        float64 `yaml:"cavities"`
	AggregateHeight float64 `yaml:"aggregate_height"`
	MaxHeight       float64 `yaml:"max_height"`
	Bumpiness       float64 `yaml:"bumpiness"`
	RowTransitions  float64 `yaml:"row_transitions"`
	ColTransitions  float64 `yaml:"col_transitions"`
	WellCells       float64 `yaml:"well_cells"`
	EdgeWellHoles   float64 `yaml:"edge_well_holes"`
	CenterWell      float64 `yaml:"center_well"`
	NewHoles        float64 `yaml:"new_holes"`
	NewCavities     float64 `yaml:"new_cavities"`
	NewHoleDepth    float64 `yaml:"new_hole_depth"`
}

// DefaultWeights is the reference tuning.
func DefaultWeights() Weights {
	return Weights{
		Attack:      1.0,
		Lines:       0.6,
		SpinFlat:    2.5,
		SpinPerLine: [4]float64{0, 1.5, 3.5, 5},
		B2B:         1.8,
		Combo:       0.5,
		AllClear:    12,
		Tetris:      4,
		EdgeWell:    0.4,
		SpinSlot:    0.8,
		SpinSlotUp:  1.2,
		Cancel:      0.9,

		Holes:           6,
		HoleDepth:       0.6,
		Cavities:        3,
		AggregateHeight: 0.08,
		MaxHeight:       0.35,
		Bumpiness:       0.35,
		RowTransitions:  0.25,
		ColTransitions:  0.3,
		WellCells:       0.12,
		EdgeWellHoles:   2,
		CenterWell:      0.6,
		NewHoles:        14,
		NewCavities:     8,
		NewHoleDepth:    1.5,
	}
}

func (w *Weights) normalize() {
	fields := []*float64{
		&w.Attack, &w.Lines, &w.SpinFlat, &w.B2B, &w.Combo, &w.AllClear,
		&w.Tetris, &w.EdgeWell, &w.SpinSlot, &w.SpinSlotUp, &w.Cancel,
		&w.Holes, &w.HoleDepth, &w.Cavities, &w.AggregateHeight, &w.MaxHeight,
		&w.Bumpiness, &w.RowTransitions, &w.ColTransitions, &w.WellCells,
		&w.EdgeWellHoles, &w.CenterWell, &w.NewHoles, &w.NewCavities, &w.NewHoleDepth,
	}
	for _, f := range fields {
		*f = clamp(*f, 0, 100)
	}
	for i := range w.SpinPerLine {
		w.SpinPerLine[i] = clamp(w.SpinPerLine[i], 0, 100)
	}
}

// Config tunes one planner.
type Config struct {
	// Aggression in [0, 1] scales how much attack is worth.
	Aggression float64 `yaml:"aggression"`
	// MistakeChance in [0, 0.5] is the base probability of a deliberate
	// sub-optimal pick.
	MistakeChance float64 `yaml:"mistake_chance"`
	// TopK candidates are re-scored with a second ply.
	TopK int `yaml:"top_k"`
	// DeepK of those also get a third ply.
	DeepK int `yaml:"deep_k"`
	// BranchK second-ply replies are expanded into the third ply.
	BranchK     int     `yaml:"branch_k"`
	NextWeight  float64 `yaml:"next_weight"`
	ThirdWeight float64 `yaml:"third_weight"`
	Weights     Weights `yaml:"weights"`
}

// DefaultConfig is the reference planner tuning.
func DefaultConfig() Config {
	return Config{
		Aggression:    0.5,
		MistakeChance: 0.05,
		TopK:          28,
		DeepK:         10,
		BranchK:       4,
		NextWeight:    0.55,
		ThirdWeight:   0.3,
		Weights:       DefaultWeights(),
	}
}

// Normalize clamps every field into its documented range.
func (c *Config) Normalize() {
	c.Aggression = clamp(c.Aggression, 0, 1)
	c.MistakeChance = clamp(c.MistakeChance, 0, 0.5)
	c.TopK = max(1, min(64, c.TopK))
	c.DeepK = max(0, min(10, c.DeepK, c.TopK))
	c.BranchK = max(1, min(4, c.BranchK))
	c.NextWeight = clamp(c.NextWeight, 0, 1)
	c.ThirdWeight = clamp(c.ThirdWeight, 0, 1)
	c.Weights.normalize()
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
