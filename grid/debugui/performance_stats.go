package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackdrop/grid"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	heightHistory []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) PerformanceStats {
	historyFrames = max(historyFrames, 1)
	return PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		heightHistory: make([]float32, historyFrames),
	}
}

// Sample records one frame's time in milliseconds and the grid height.
func (ps *PerformanceStats) Sample(g *grid.Grid, deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.heightHistory[ps.frameIndex] = float32(g.Height())
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AvgFrameTime returns the mean frame time in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(g *grid.Grid, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Sample(g, deltaTime)

	avgFrameTime := ps.AvgFrameTime()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))
	imgui.Text("Stack Height")
	imgui.PlotLinesFloatPtr("##height", &ps.heightHistory[0], int32(len(ps.heightHistory)))

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
