package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DanielRosa74/algo-visualizer/internal/algo"
	"github.com/DanielRosa74/algo-visualizer/internal/config"
)

const (
	stateMenu = iota
	stateConfig
	statePlay
)

var orders = []string{"preorder", "inorder", "postorder"}

var (
	cursorGlyph   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selectedText  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	selectedNote  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	unselected    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	unselectedDim = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	errorText     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// App is the full interactive flow: pick an algorithm, edit its input,
// watch the playback.
type App struct {
	reg *algo.Registry
	cfg *config.Config

	state  int
	cursor int
	names  []string

	selected    string
	rows        []string
	rowCursor   int
	editing     bool
	editBuf     string
	bufs        map[string]string
	orderIdx    int
	delayMs     int
	errMsg      string
	playModel   PlayModel
	width       int
	height      int
}

func NewApp(reg *algo.Registry, cfg *config.Config) *App {
	names := make([]string, 0)
	for _, family := range algo.Families {
		for _, a := range reg.ByFamily(family) {
			names = append(names, a.Name)
		}
	}
	SetTheme(cfg.Theme)
	return &App{
		reg:    reg,
		cfg:    cfg,
		state:  stateMenu,
		names:  names,
		bufs:   make(map[string]string),
		width:  80,
		height: 24,
	}
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.playModel.width = msg.Width
		return m, nil
	default:
		if m.state == statePlay {
			newPlay, cmd := m.playModel.Update(msg)
			m.playModel = newPlay.(PlayModel)
			return m, cmd
		}
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case statePlay:
		if msg.String() == "esc" {
			m.playModel.stepper.Close()
			m.state = stateMenu
			return m, nil
		}
		newPlay, cmd := m.playModel.Update(msg)
		m.playModel = newPlay.(PlayModel)
		return m, cmd
	}
	return m, nil
}

func (m App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		m.state = stateConfig
		m.setRowsForAlgorithm()
	}
	return m, nil
}

// setRowsForAlgorithm builds the parameter rows the selected algorithm
// actually takes.
func (m *App) setRowsForAlgorithm() {
	alg, err := m.reg.Get(m.selected)
	if err != nil {
		return
	}

	m.rows = []string{"values"}
	if alg.NeedsTarget || alg.TakesTarget {
		m.rows = append(m.rows, "target")
	}
	if alg.TakesOrder {
		m.rows = append(m.rows, "order")
	}
	m.rows = append(m.rows, "delay")

	if m.bufs["values"] == "" {
		m.bufs["values"] = config.FormatValues(m.cfg.Floats())
	}
	if m.bufs["target"] == "" {
		m.bufs["target"] = config.FormatTarget(m.cfg.TargetFloat())
	}
	if m.delayMs == 0 {
		m.delayMs = int(m.cfg.DelayFor(string(alg.Family)).Milliseconds())
	}
	m.rowCursor = 0
	m.errMsg = ""
}

func (m App) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.editing = false
			m.bufs[m.rows[m.rowCursor]] = m.editBuf
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.editBuf += msg.String()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case "down", "j":
		if m.rowCursor < len(m.rows)-1 {
			m.rowCursor++
		}
	case "enter", " ":
		switch m.rows[m.rowCursor] {
		case "order":
			m.orderIdx = (m.orderIdx + 1) % len(orders)
		case "delay":
			// h/l adjust it
		default:
			m.editing = true
			m.editBuf = m.bufs[m.rows[m.rowCursor]]
		}
	case "left", "h":
		switch m.rows[m.rowCursor] {
		case "order":
			m.orderIdx = (m.orderIdx + len(orders) - 1) % len(orders)
		case "delay":
			if m.delayMs > 25 {
				m.delayMs -= 25
			}
		}
	case "right", "l":
		switch m.rows[m.rowCursor] {
		case "order":
			m.orderIdx = (m.orderIdx + 1) % len(orders)
		case "delay":
			m.delayMs += 25
		}
	case "s":
		return m.start()
	}
	return m, nil
}

func (m App) start() (tea.Model, tea.Cmd) {
	alg, err := m.reg.Get(m.selected)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	values, err := config.ParseValues(m.bufs["values"])
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	target := math.NaN()
	if alg.NeedsTarget || alg.TakesTarget {
		target, err = config.ParseTarget(m.bufs["target"])
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if alg.NeedsTarget && math.IsNaN(target) {
			m.errMsg = "a target is required"
			return m, nil
		}
	}

	order, err := algo.ParseOrder(orders[m.orderIdx])
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	input := algo.Input{Values: values, Target: target, Order: order}
	m.playModel = NewPlayModel(alg, input, clampDelay(m.delayMs))
	m.errMsg = ""
	m.state = statePlay
	return m, m.playModel.Init()
}

func (m App) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case statePlay:
		return m.playModel.View()
	}
	return ""
}

func (m App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("ALGOVIZ") + "\n")
	b.WriteString("    " + Subtle.Render("algorithm playback") + "\n")
	b.WriteString("    " + Subtle.Render(strings.Repeat("─", 25)) + "\n\n")

	for i, name := range m.names {
		alg, err := m.reg.Get(name)
		if err != nil {
			continue
		}
		desc := alg.Description
		if len(desc) > 44 {
			desc = desc[:41] + "..."
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cursorGlyph.Render("▸"),
				selectedText.Render(fmt.Sprintf("%-14s", name)),
				selectedNote.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				unselected.Render(fmt.Sprintf("%-14s", name)),
				unselectedDim.Render(desc)))
		}
	}

	b.WriteString("\n    " + KeyHint.Render("j/k navigate · enter select · q quit") + "\n")
	return b.String()
}

func (m App) viewConfig() string {
	alg, err := m.reg.Get(m.selected)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render(strings.ToUpper(m.selected)) + "\n")
	b.WriteString("    " + Subtle.Render(alg.Description) + "\n")
	b.WriteString("    " + Subtle.Render(strings.Repeat("─", 25)) + "\n\n")

	for i, row := range m.rows {
		val := m.rowValue(row)
		if m.editing && i == m.rowCursor {
			val = m.editBuf + "_"
		}
		if i == m.rowCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cursorGlyph.Render("▸"),
				selectedText.Render(fmt.Sprintf("%-8s", row)),
				selectedNote.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				unselected.Render(fmt.Sprintf("%-8s", row)),
				unselectedDim.Render(val)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n    " + errorText.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n    " + KeyHint.Render("j/k select · enter edit · h/l adjust · s start · esc back") + "\n")
	return b.String()
}

func (m App) rowValue(row string) string {
	switch row {
	case "order":
		return orders[m.orderIdx]
	case "delay":
		return fmt.Sprintf("%dms", m.delayMs)
	case "target":
		if m.bufs["target"] == "" {
			return "(none)"
		}
		return m.bufs["target"]
	default:
		return m.bufs[row]
	}
}

func clampDelay(ms int) (d time.Duration) {
	d = time.Duration(ms) * time.Millisecond
	if d < minDelay {
		d = minDelay
	}
	if d > maxDelay {
		d = maxDelay
	}
	return d
}

// RunApp starts the interactive application.
func RunApp(reg *algo.Registry, cfg *config.Config) error {
	return tea.NewProgram(NewApp(reg, cfg), tea.WithAltScreen()).Start()
}
