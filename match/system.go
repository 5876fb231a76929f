package match

// System is one step of the match loop. Systems run in registration order
// once per frame and may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
