package match

// Frame is what every system sees during one scheduler step.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Match     *Match
}

func newFrame(dt float64, m *Match) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Match:     m,
	}
}
