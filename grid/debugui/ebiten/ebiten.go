// Package ebiten connects the grid debug panels to the Ebiten game loop
// through the Dear ImGui Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackdrop/grid/debugui"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend and draws an
// Inspector on top of the game screen.
type Overlay struct {
	*ebitenbackend.EbitenBackend
	Inspector *debugui.Inspector
	timer     *debugui.FrameTimer
}

// NewOverlay creates the backend window. The ImGui ini file is disabled.
func NewOverlay(title string, width, height int, inspector *debugui.Inspector) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		EbitenBackend: backend,
		Inspector:     inspector,
		timer:         debugui.NewFrameTimer(),
	}
}

// WantsInput reports whether ImGui is consuming mouse or keyboard input this
// frame.
func (o *Overlay) WantsInput() bool {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse() || io.WantCaptureKeyboard()
}

// Update builds the ImGui frame. Call it from ebiten.Game.Update.
func (o *Overlay) Update() {
	o.BeginFrame()
	o.Inspector.Render(o.timer.GetDeltaTime())
	o.EndFrame()
}

// DrawOver renders the ImGui frame on top of screen.
func (o *Overlay) DrawOver(screen *ebiten.Image) {
	o.Draw(screen)
}
