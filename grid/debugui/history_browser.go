package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackdrop/grid"
)

// HistoryBrowser lists every landing of the current replay, newest last.
type HistoryBrowser struct {
	entries        []grid.Landing
	filterText     string
	selected       int
	maxRowsPerPage int
	currentPage    int
}

func NewHistoryBrowser(maxRowsPerPage int) HistoryBrowser {
	return HistoryBrowser{selected: -1, maxRowsPerPage: maxRowsPerPage}
}

func (hb *HistoryBrowser) Append(l grid.Landing) {
	hb.entries = append(hb.entries, l)
}

func (hb *HistoryBrowser) Clear() {
	hb.entries = hb.entries[:0]
	hb.selected = -1
	hb.currentPage = 0
}

func (hb *HistoryBrowser) Len() int {
	return len(hb.entries)
}

// Filtered returns the indices of entries whose move token contains the
// filter text, ignoring case.
func (hb *HistoryBrowser) Filtered() []int {
	filter := strings.ToUpper(strings.TrimSpace(hb.filterText))
	indices := make([]int, 0, len(hb.entries))
	for i, l := range hb.entries {
		if filter == "" || strings.Contains(fmt.Sprintf("%s%d", l.Shape, l.Column), filter) {
			indices = append(indices, i)
		}
	}
	return indices
}

func (hb *HistoryBrowser) Render() {
	if !imgui.BeginV("Landing History", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter moves...", &hb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		hb.filterText = ""
	}

	filtered := hb.Filtered()
	totalPages := max(1, (len(filtered)+hb.maxRowsPerPage-1)/hb.maxRowsPerPage)
	hb.currentPage = min(hb.currentPage, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("HistoryTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Move")
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Cleared")
		imgui.TableSetupColumn("Height")
		imgui.TableHeadersRow()

		start := hb.currentPage * hb.maxRowsPerPage
		end := min(start+hb.maxRowsPerPage, len(filtered))
		for _, i := range filtered[start:end] {
			l := hb.entries[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", i), hb.selected == i, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				hb.selected = i
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%s%d", l.Shape, l.Column))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", l.Placement.Bottom()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", l.Cleared))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", l.Height))
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d landings)", hb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && hb.currentPage > 0 {
			hb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && hb.currentPage < totalPages-1 {
			hb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d landings", len(filtered)))
	}

	if hb.selected >= 0 && hb.selected < len(hb.entries) {
		imgui.Separator()
		l := hb.entries[hb.selected]
		imgui.Text(fmt.Sprintf("Cells: %v", l.Placement))
	}

	imgui.End()
}
