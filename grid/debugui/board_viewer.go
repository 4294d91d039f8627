package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackdrop/grid"
)

type BoardViewer struct {
	last        grid.Placement
	hasLast     bool
	lastCleared int
	// cell side in pixels
	cellSize   float32
	showHidden bool
}

func NewBoardViewer() BoardViewer {
	return BoardViewer{cellSize: 12}
}

// Highlight marks the most recent landing. A zero placement clears the mark.
func (bv *BoardViewer) Highlight(p grid.Placement, cleared int) {
	bv.last = p
	bv.hasLast = p != grid.Placement{}
	bv.lastCleared = cleared
}

func (bv *BoardViewer) highlighted(x, y int) bool {
	if !bv.hasLast || bv.lastCleared > 0 {
		return false
	}
	for _, c := range bv.last {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

func (bv *BoardViewer) Render(g *grid.Grid) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Height: %d / %d", g.Height(), grid.Height))
	imgui.Text(fmt.Sprintf("Placed: %d  Cleared: %d", g.Placed(), g.Cleared()))
	imgui.Checkbox("Show empty rows", &bv.showHidden)
	imgui.Separator()

	rows := g.Height()
	if bv.showHidden {
		rows = min(rows+4, grid.Height)
	}

	filled := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 1))
	recent := imgui.ColorU32Vec4(imgui.NewVec4(0.9, 0.5, 0.2, 1))
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	for row := 0; row < rows; row++ {
		y := rows - 1 - row
		for x := 0; x < grid.Width; x++ {
			color := empty
			switch {
			case bv.highlighted(x, y):
				color = recent
			case g.Occupied(x, y):
				color = filled
			}
			minPos := imgui.NewVec2(origin.X+float32(x)*bv.cellSize, origin.Y+float32(row)*bv.cellSize)
			maxPos := imgui.NewVec2(minPos.X+bv.cellSize-1, minPos.Y+bv.cellSize-1)
			drawList.AddRectFilled(minPos, maxPos, color)
		}
	}
	imgui.Dummy(imgui.NewVec2(bv.cellSize*grid.Width, bv.cellSize*float32(rows)))

	if imgui.TreeNodeStr("Row Fill") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowFillTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Filled")
			imgui.TableSetupColumn("Mask")
			imgui.TableHeadersRow()

			for y := g.Height() - 1; y >= 0; y-- {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d / %d", g.Filled(y), grid.Width))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%010b", g.Row(y)))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
