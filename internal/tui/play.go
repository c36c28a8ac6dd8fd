package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/DanielRosa74/algo-visualizer/internal/algo"
	"github.com/DanielRosa74/algo-visualizer/internal/player"
)

type TickMsg time.Time

const (
	minDelay = 10 * time.Millisecond
	maxDelay = 2 * time.Second
)

var (
	canvasStyle = lipgloss.NewStyle().
			Padding(1, 2)

	statsStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			Width(45)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	graphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("49"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(2)
)

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// PlayModel animates one algorithm run, pulling a single event per
// tick.
type PlayModel struct {
	alg   algo.Algorithm
	input algo.Input

	stepper *player.Stepper
	sum     *player.Summary

	delay      time.Duration
	paused     bool
	done       bool
	showHelp   bool
	showLegend bool

	width, height int
}

func NewPlayModel(alg algo.Algorithm, input algo.Input, delay time.Duration) PlayModel {
	if delay < minDelay {
		delay = minDelay
	}
	m := PlayModel{alg: alg, input: input, delay: delay, width: 80, height: 24}
	m.restart()
	return m
}

func (m *PlayModel) restart() {
	if m.stepper != nil {
		m.stepper.Close()
	}
	m.stepper = player.NewStepper(m.alg.New(m.input), m.input.Values)
	m.sum = player.NewSummary(m.stepper.Board())
	m.done = false
}

func (m *PlayModel) advance() {
	ev, ok := m.stepper.Step()
	if !ok {
		m.done = true
		return
	}
	m.sum.Observe(ev)
}

func (m PlayModel) Init() tea.Cmd {
	return tick(m.delay)
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.paused || m.done {
			return m, nil
		}
		m.advance()
		if m.done {
			return m, nil
		}
		return m, tick(m.delay)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.stepper.Close()
		return m, tea.Quit

	case " ":
		m.paused = !m.paused
		if !m.paused && !m.done {
			return m, tick(m.delay)
		}

	case "n":
		if m.paused && !m.done {
			m.advance()
		}

	case "+", "=":
		m.delay = m.delay * 4 / 5
		if m.delay < minDelay {
			m.delay = minDelay
		}

	case "-", "_":
		m.delay = m.delay * 5 / 4
		if m.delay > maxDelay {
			m.delay = maxDelay
		}

	case "r":
		m.restart()
		m.paused = false
		return m, tick(m.delay)

	case "t":
		names := ThemeNames()
		for i, name := range names {
			if name == CurrentTheme.Name {
				SetTheme(names[(i+1)%len(names)])
				break
			}
		}

	case "g":
		m.showLegend = !m.showLegend

	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m PlayModel) View() string {
	theme := CurrentTheme
	board := m.stepper.Board()

	var canvas string
	if m.alg.Family == algo.FamilyTraversal {
		canvas = renderTree(board, theme)
	} else {
		canvas = renderBars(board, theme)
	}
	if m.showLegend {
		canvas += "\n" + BoxWithTitle("legend", legendRows(string(m.alg.Family), theme), 24)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvas),
		statsStyle.Render(m.statsView(board)),
	)

	help := helpStyle.Render("space pause · n step · +/- speed · r reset · t theme · g legend · ? help · q quit")

	out := view + "\n" + help
	if m.showHelp {
		out = m.helpOverlay() + "\n" + out
	}
	return out
}

func (m PlayModel) statsView(board *player.Board) string {
	var b strings.Builder
	theme := CurrentTheme

	b.WriteString(headerStyle.Render(strings.ToUpper(m.alg.Name)))
	b.WriteString("  " + Subtle.Render(string(m.alg.Family)) + "\n\n")

	b.WriteString(labelStyle.Render("status") + m.statusText(board) + "\n")
	b.WriteString(labelStyle.Render("steps") + valueStyle.Render(fmt.Sprintf("%d", m.sum.Events)) + "\n")
	b.WriteString(labelStyle.Render("compares") + valueStyle.Render(fmt.Sprintf("%d", m.sum.Comparisons)) + "\n")
	if m.alg.Family == algo.FamilySort {
		b.WriteString(labelStyle.Render("moves") + valueStyle.Render(fmt.Sprintf("%d", m.sum.Moves)) + "\n")
	}
	b.WriteString(labelStyle.Render("delay") + valueStyle.Render(m.delay.String()) + "\n")
	if !math.IsNaN(m.input.Target) {
		b.WriteString(labelStyle.Render("target") + valueStyle.Render(formatValue(m.input.Target)) + "\n")
	}
	if m.alg.TakesOrder {
		b.WriteString(labelStyle.Render("order") + valueStyle.Render(string(m.input.Order)) + "\n")
	}
	b.WriteString(labelStyle.Render("theme") + valueStyle.Render(theme.Name) + "\n")

	if done, total := m.progress(board); total > 0 {
		b.WriteString("\n" + ProgressBar(float64(done)/float64(total), 26) + "\n")
	}

	if series := m.chartSeries(board); len(series) >= 2 {
		caption := "values"
		if m.alg.Family == algo.FamilyTraversal {
			caption = "visited"
		}
		b.WriteString("\n" + graphStyle.Render(asciigraph.Plot(series,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption(caption),
		)) + "\n")
	}

	if board.Last != nil {
		b.WriteString("\n" + Subtle.Render(DescribeEvent(board.Last)) + "\n")
	}
	return b.String()
}

func (m PlayModel) statusText(board *player.Board) string {
	switch {
	case m.done || board.Done():
		switch board.Outcome {
		case player.OutcomeFound:
			return StatusDone.Render(fmt.Sprintf("FOUND at [%d]", board.Found))
		case player.OutcomeNotFound:
			return StatusPaused.Render("NOT FOUND")
		case player.OutcomeError:
			return StatusError.Render("ERROR " + board.Message)
		default:
			return StatusDone.Render("COMPLETE")
		}
	case m.paused:
		return StatusPaused.Render("PAUSED")
	default:
		return StatusRunning.Render("RUNNING")
	}
}

// progress reports settled or visited positions against the reachable
// total.
func (m PlayModel) progress(board *player.Board) (done, total int) {
	switch m.alg.Family {
	case algo.FamilySort:
		return len(board.Sorted), len(board.Values)
	case algo.FamilyTraversal:
		for _, v := range board.Values {
			if !math.IsNaN(v) {
				total++
			}
		}
		return len(board.Visited), total
	default:
		return 0, 0
	}
}

func (m PlayModel) chartSeries(board *player.Board) []float64 {
	src := board.Values
	if m.alg.Family == algo.FamilyTraversal {
		src = board.VisitedValues
	}
	series := make([]float64, 0, len(src))
	for _, v := range src {
		if !math.IsNaN(v) {
			series = append(series, v)
		}
	}
	return series
}

func (m PlayModel) helpOverlay() string {
	return Subtle.Render(strings.Join([]string{
		"╭──────────────── keys ────────────────╮",
		"│  space  pause / resume               │",
		"│  n      single step while paused     │",
		"│  + / -  faster / slower              │",
		"│  r      restart with the same input  │",
		"│  t      cycle color theme            │",
		"│  g      toggle color legend          │",
		"│  ?      toggle this help             │",
		"│  q      quit                         │",
		"╰──────────────────────────────────────╯",
	}, "\n"))
}

// RunPlayback runs a single full-screen playback to completion.
func RunPlayback(alg algo.Algorithm, input algo.Input, delay time.Duration) error {
	return tea.NewProgram(NewPlayModel(alg, input, delay), tea.WithAltScreen()).Start()
}
