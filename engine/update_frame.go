package engine

import "github.com/plus3/blockfall/tetris"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *tetris.Session
}

func newUpdateFrame(dt float64, session *tetris.Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}
