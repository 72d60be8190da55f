package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/arraylist/internal/arraylist"
)

const cellWidth = 6

type SlotOptions struct {
	// Cursor highlights one slot; -1 disables the highlight.
	Cursor int
	// MaxSlots caps how many slots are drawn per row set. Zero draws all.
	MaxSlots int
	// PerRow wraps the rendering. Zero selects 10.
	PerRow int
}

// RenderSlots draws the backing store of l: live slots with their values,
// unused slots as dots, and a size/capacity footer.
func RenderSlots[T any](l *arraylist.ArrayList[T], opts SlotOptions) string {
	perRow := opts.PerRow
	if perRow <= 0 {
		perRow = 10
	}
	total := l.Cap()
	hidden := 0
	if opts.MaxSlots > 0 && total > opts.MaxSlots {
		hidden = total - opts.MaxSlots
		total = opts.MaxSlots
	}

	var rows []string
	var row []string
	for i := 0; i < total; i++ {
		row = append(row, renderCell(l, i, opts.Cursor))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	footer := fmt.Sprintf("%s  %s",
		Metric("size", fmt.Sprint(l.Size())),
		Metric("cap", fmt.Sprint(l.Cap())),
	)
	if hidden > 0 {
		footer += Subtle.Render(fmt.Sprintf("  (+%d slots not shown)", hidden))
	}
	rows = append(rows, footer)
	return strings.Join(rows, "\n")
}

func renderCell[T any](l *arraylist.ArrayList[T], i, cursor int) string {
	style := SlotFree
	label := "·"
	if i < l.Size() {
		v, err := l.Get(i)
		if err == nil {
			label = truncate(fmt.Sprint(v), cellWidth)
		}
		style = SlotLive
	}
	if i == cursor {
		style = SlotCursor
	}
	index := Subtle.Render(fmt.Sprintf("%d", i))
	return lipgloss.JoinVertical(lipgloss.Center, style.Width(cellWidth).Render(label), index)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
