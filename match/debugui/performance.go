package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockbattle/match"
)

// PerformancePanel shows frame times and per-system scheduler statistics.
type PerformancePanel struct {
	scheduler     *match.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformancePanel(s *match.Scheduler, historyFrames int) *PerformancePanel {
	return &PerformancePanel{
		scheduler:     s,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (pp *PerformancePanel) Render(deltaTime float32) {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pp.frameHistory[pp.frameIndex] = deltaTime * 1000.0
	pp.frameIndex = (pp.frameIndex + 1) % pp.historyFrames

	stats := pp.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	var avgFrameTime float32
	for _, ft := range pp.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(pp.historyFrames)
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &pp.frameHistory[0], int32(len(pp.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
