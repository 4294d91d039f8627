package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/replay"
)

type TallyViewer struct{}

func (tv *TallyViewer) Render(t *replay.Tally) {
	if !imgui.BeginV("Shape Tally", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Placements: %d", t.Placements))
	imgui.Text(fmt.Sprintf("Rows Cleared: %d", t.RowsCleared))
	imgui.Text(fmt.Sprintf("Peak Height: %d", t.PeakHeight))

	maxPlaced := 0
	for _, s := range grid.Shapes {
		maxPlaced = max(maxPlaced, t.PlacedBy(s))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("TallyTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Placed")
		imgui.TableSetupColumn("Rows Cleared")
		imgui.TableHeadersRow()

		for _, s := range grid.Shapes {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(s.String())

			imgui.TableNextColumn()
			placed := t.PlacedBy(s)
			imgui.Text(fmt.Sprintf("%d", placed))
			if maxPlaced > 0 {
				barWidth := float32(placed) / float32(maxPlaced) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", t.ClearedBy(s)))
		}

		imgui.EndTable()
	}

	imgui.End()
}
