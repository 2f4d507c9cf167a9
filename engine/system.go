package engine

// System is a piece of per-frame behavior. Systems read the session through
// the frame and queue their changes on frame.Commands; state they keep in
// their own fields persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
