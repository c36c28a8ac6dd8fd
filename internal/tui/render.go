package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielRosa74/algo-visualizer/internal/player"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

const barWidth = 28

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func inWindow(b *player.Board, i int) bool {
	lo, hi := b.Window[0], b.Window[1]
	if lo < 0 || hi < 0 {
		return false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return i >= lo && i <= hi
}

// barStyle picks the color for one array position, most specific state
// first.
func barStyle(b *player.Board, i int, t Theme) lipgloss.Style {
	switch {
	case b.Found == i:
		return lipgloss.NewStyle().Foreground(t.Found).Bold(true)
	case contains(b.Moved, i):
		return lipgloss.NewStyle().Foreground(t.Moved)
	case contains(b.Active, i):
		return lipgloss.NewStyle().Foreground(t.Active)
	case b.Current == i || b.Min == i:
		return lipgloss.NewStyle().Foreground(t.Marker)
	case b.Sorted[i]:
		return lipgloss.NewStyle().Foreground(t.Sorted)
	case inWindow(b, i):
		return lipgloss.NewStyle().Foreground(t.Window)
	default:
		return lipgloss.NewStyle().Foreground(t.Bar)
	}
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "·"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// renderBars draws the working array as horizontal bars, one row per
// position.
func renderBars(b *player.Board, t Theme) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range b.Values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	text := lipgloss.NewStyle().Foreground(t.Text)

	var sb strings.Builder
	for i, v := range b.Values {
		mark := " "
		if i == b.Current {
			mark = "▸"
		} else if i == b.Min {
			mark = "•"
		}

		if math.IsNaN(v) {
			sb.WriteString(fmt.Sprintf("%s%3d ▕%s\n", mark, i, muted.Render("·")))
			continue
		}

		length := 1
		if span > 0 {
			length = 1 + int((v-lo)/span*float64(barWidth-1))
		}
		bar := barStyle(b, i, t).Render(strings.Repeat("█", length))
		sb.WriteString(fmt.Sprintf("%s%3d ▕%s %s\n", mark, i, bar, text.Render(formatValue(v))))
	}
	return sb.String()
}

// nodeStyle picks the color for one tree slot.
func nodeStyle(b *player.Board, i int, t Theme) lipgloss.Style {
	switch {
	case b.Found == i:
		return lipgloss.NewStyle().Foreground(t.Found).Bold(true)
	case b.Current == i:
		return lipgloss.NewStyle().Foreground(t.Marker).Bold(true)
	case contains(b.Active, i):
		return lipgloss.NewStyle().Foreground(t.Active)
	case contains(b.Frontier, i):
		return lipgloss.NewStyle().Foreground(t.Window).Underline(true)
	case contains(b.Visited, i):
		return lipgloss.NewStyle().Foreground(t.Sorted)
	default:
		return lipgloss.NewStyle().Foreground(t.Bar)
	}
}

// renderTree draws the level-order slots as a centered tree, one line
// per depth.
func renderTree(b *player.Board, t Theme) string {
	n := len(b.Values)
	const width = 64

	var sb strings.Builder
	for start, count := 0, 1; start < n; start, count = 2*start+1, count*2 {
		cell := width / count
		if cell < 3 {
			cell = 3
		}
		for i := start; i < start+count && i < n; i++ {
			label := formatValue(b.Values[i])
			sb.WriteString(lipgloss.PlaceHorizontal(cell, lipgloss.Center, nodeStyle(b, i, t).Render(label)))
		}
		sb.WriteString("\n")
	}

	if len(b.Frontier) > 0 {
		name := "queue"
		if b.FrontierIsStack {
			name = "path"
		}
		muted := lipgloss.NewStyle().Foreground(t.Muted)
		sb.WriteString("\n" + muted.Render(fmt.Sprintf("%s: %v", name, b.Frontier)) + "\n")
	}
	return sb.String()
}

// DescribeEvent renders one event as a status line fragment.
func DescribeEvent(ev step.Event) string {
	switch e := ev.(type) {
	case step.Compare:
		if e.J == step.NoIndex {
			return fmt.Sprintf("compare [%d] with %s", e.I, formatValue(e.Target))
		}
		return fmt.Sprintf("compare [%d] and [%d]", e.I, e.J)
	case step.Swap:
		return fmt.Sprintf("swap [%d] and [%d]", e.I, e.J)
	case step.Range:
		return fmt.Sprintf("window %d..%d", e.Lo, e.Hi)
	case step.Found:
		return fmt.Sprintf("found %s at [%d]", formatValue(e.Value), e.Index)
	case step.NotFound:
		return fmt.Sprintf("%s is absent", formatValue(e.Target))
	case step.Current:
		return fmt.Sprintf("scan [%d]", e.Index)
	case step.NewMin:
		return fmt.Sprintf("new minimum at [%d]", e.Index)
	case step.Move:
		return fmt.Sprintf("%s at [%d]", e.Op, e.Index)
	case step.Sorted:
		return fmt.Sprintf("settled %d..%d", e.Lo, e.Hi)
	case step.Divide:
		return fmt.Sprintf("split %d..%d", e.Lo, e.Hi)
	case step.Merge:
		return fmt.Sprintf("merge %d..%d", e.Lo, e.Hi)
	case step.Complete:
		return "complete"
	case step.Queue:
		return fmt.Sprintf("queue %v", e.Nodes)
	case step.Stack:
		return fmt.Sprintf("path %v", e.Nodes)
	case step.Visit:
		return fmt.Sprintf("visit %s at depth %d", formatValue(e.Value), e.Depth)
	case step.Backtrack:
		return fmt.Sprintf("backtrack from [%d]", e.Index)
	case step.Error:
		return e.Message
	default:
		return ""
	}
}

// legendRows lists the color key for one algorithm family.
func legendRows(family string, t Theme) string {
	swatch := func(c lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(c).Render("■") + " " + label
	}

	var rows []string
	switch family {
	case "search":
		rows = []string{
			swatch(t.Active, "probed"),
			swatch(t.Window, "window"),
			swatch(t.Found, "found"),
		}
	case "traversal":
		rows = []string{
			swatch(t.Marker, "visiting"),
			swatch(t.Sorted, "visited"),
			swatch(t.Window, "frontier"),
			swatch(t.Found, "found"),
		}
	default:
		rows = []string{
			swatch(t.Active, "comparing"),
			swatch(t.Moved, "writing"),
			swatch(t.Marker, "scan / pivot"),
			swatch(t.Sorted, "settled"),
			swatch(t.Window, "subrange"),
		}
	}
	return strings.Join(rows, "\n")
}
