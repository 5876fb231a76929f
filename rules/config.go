package rules

// Config holds the tunable rules of a match. Normalize clamps every field so
// the engine never sees out-of-range values.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// QueueHorizon is the minimum number of previewed pieces.
	QueueHorizon int `yaml:"queue_horizon"`
	// GarbageCap is the most garbage rows raised by a single clear-less lock.
	GarbageCap int `yaml:"garbage_cap"`
	// Gravity is in rows per second.
	Gravity float64 `yaml:"gravity"`
	// LockDelay is the grounded time in seconds before a piece locks.
	LockDelay     float64        `yaml:"lock_delay"`
	MaxLockResets int            `yaml:"max_lock_resets"`
	HoleWalk      HoleWalkConfig `yaml:"hole_walk"`
}

// DefaultConfig is the reference 10×20 ruleset.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        20,
		QueueHorizon:  6,
		GarbageCap:    8,
		Gravity:       1,
		LockDelay:     0.5,
		MaxLockResets: 15,
		HoleWalk:      DefaultHoleWalk(),
	}
}

// Normalize clamps the configuration into its documented ranges.
func (c *Config) Normalize() {
	c.Width = clampInt(c.Width, 8, 40)
	c.Height = clampInt(c.Height, 8, 60)
	c.QueueHorizon = clampInt(c.QueueHorizon, 6, 14)
	c.GarbageCap = clampInt(c.GarbageCap, 1, c.Height)
	c.Gravity = clampFloat(c.Gravity, 0.01, 60)
	c.LockDelay = clampFloat(c.LockDelay, 0, 5)
	c.MaxLockResets = clampInt(c.MaxLockResets, 0, 100)
	c.HoleWalk.normalize()
}
