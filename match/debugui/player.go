package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockbattle/match"
)

// PlayerPanel shows one player's counters, pending garbage and, for a bot,
// its most recent planner decision.
type PlayerPanel struct {
	player *match.Player
}

func NewPlayerPanel(p *match.Player) *PlayerPanel {
	return &PlayerPanel{player: p}
}

func (pp *PlayerPanel) Render() {
	p := pp.player
	if !imgui.BeginV("Player "+p.Name, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	e := p.Engine
	c := e.Counters()
	s := e.Streaks()
	imgui.Text(fmt.Sprintf("Phase: %s", e.Phase()))
	imgui.Text(fmt.Sprintf("Pieces: %d  Lines: %d", c.PiecesPlaced, c.LinesCleared))
	imgui.Text(fmt.Sprintf("Sent: %d  Received: %d", c.AttacksSent, p.Received()))
	imgui.Text(fmt.Sprintf("Combo: %d  B2B: %d", s.Combo, s.B2B))
	imgui.Text(fmt.Sprintf("Finesse errors: %d", c.FinesseErrors))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pending garbage: %d", e.PendingGarbage()))
	for _, entry := range e.PendingEntries() {
		imgui.BulletText(fmt.Sprintf("%d lines, hole at %d", entry.Lines, entry.HoleColumn))
	}

	if p.Bot != nil && imgui.TreeNodeStr("Planner") {
		d := p.Bot.Planner().LastDecision()
		st := p.Bot.Stats()
		imgui.Text(fmt.Sprintf("Strategy: %s", d.Strategy))
		imgui.Text(fmt.Sprintf("Danger: %.2f", d.Danger))
		imgui.Text(fmt.Sprintf("Candidates: %d  Pool: %d", d.Candidates, d.Pool))
		imgui.Text(fmt.Sprintf("Decisions: %d  Mistakes: %d  Fallbacks: %d", st.Decisions, st.Mistakes, st.Fallbacks))
		imgui.Checkbox("Pause bot", &p.Paused)
		imgui.TreePop()
	}

	imgui.End()
}
