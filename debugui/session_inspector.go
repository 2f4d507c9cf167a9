package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// SessionInspector shows the active piece and the session counters.
type SessionInspector struct {
	Session *tetris.Session
}

// Lines returns the inspector's text rows.
func (si *SessionInspector) Lines() []string {
	piece := si.Session.Piece()
	stats := si.Session.Stats()
	return []string{
		fmt.Sprintf("Piece: %s %s at %s", piece.Shape, piece.Orientation, piece.Position),
		fmt.Sprintf("At top: %t", si.Session.AtTop()),
		fmt.Sprintf("Ticks: %d", stats.Ticks),
		fmt.Sprintf("Falls: %d", stats.Falls),
		fmt.Sprintf("Locks: %d", stats.Locks),
		fmt.Sprintf("Spawns: %d", stats.Spawns),
		fmt.Sprintf("Lines cleared: %d", stats.LinesCleared),
		fmt.Sprintf("Rejected moves: %d", stats.Rejected),
	}
}

func (si *SessionInspector) Render() {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	lines := si.Lines()
	imgui.Text(lines[0])
	imgui.Separator()
	for _, line := range lines[1:] {
		imgui.BulletText(line)
	}

	if imgui.TreeNodeStr("Playfield") {
		imgui.Text(si.Session.Render())
		imgui.TreePop()
	}

	imgui.End()
}
