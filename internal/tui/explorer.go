package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/arraylist/internal/arraylist"
	"github.com/san-kum/arraylist/internal/metrics"
	"github.com/san-kum/arraylist/internal/viz"
)

type mode int

const (
	modeBrowse mode = iota
	modePrompt
)

type action int

const (
	actionAdd action = iota
	actionInsert
	actionSet
	actionRemove
)

var actionNames = map[action]string{
	actionAdd:    "append",
	actionInsert: "insert at cursor",
	actionSet:    "set at cursor",
	actionRemove: "remove value",
}

type model struct {
	list    *arraylist.ArrayList[string]
	tracker *metrics.GrowthTracker

	mode    mode
	action  action
	editBuf string
	cursor  int

	status  string
	lastErr error
	ops     int

	width  int
	height int
}

func newModel(list *arraylist.ArrayList[string]) model {
	tracker := metrics.NewGrowthTracker(list.Cap())
	list.SetGrowthObserver(tracker)
	return model{
		list:    list,
		tracker: tracker,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.mode == modePrompt {
		return m.promptKey(msg)
	}
	return m.browseKey(msg)
}

func (m model) browseKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		// the cursor may rest on Size to address the insertion point at the end
		if m.cursor < m.list.Size() {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = m.list.Size()
	case "a", "enter":
		m.prompt(actionAdd)
	case "i":
		m.prompt(actionInsert)
	case "s":
		m.prompt(actionSet)
	case "d":
		m.prompt(actionRemove)
	case "x":
		v, err := m.list.RemoveAt(m.cursor)
		m.done(err, fmt.Sprintf("removed %q at %d", v, m.cursor))
	}
	return m, nil
}

func (m model) promptKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.apply()
		m.mode = modeBrowse
		m.editBuf = ""
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.editBuf = ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) prompt(a action) {
	m.mode = modePrompt
	m.action = a
	m.editBuf = ""
}

func (m *model) apply() {
	v := m.editBuf
	switch m.action {
	case actionAdd:
		m.list.Add(v)
		m.done(nil, fmt.Sprintf("appended %q", v))
		m.cursor = m.list.Size() - 1
	case actionInsert:
		err := m.list.Insert(v, m.cursor)
		m.done(err, fmt.Sprintf("inserted %q at %d", v, m.cursor))
	case actionSet:
		err := m.list.Set(v, m.cursor)
		m.done(err, fmt.Sprintf("set %d to %q", m.cursor, v))
	case actionRemove:
		removed, err := m.list.Remove(v)
		m.done(err, fmt.Sprintf("removed %q", removed))
	}
}

func (m *model) done(err error, status string) {
	m.lastErr = err
	if err != nil {
		m.status = ""
		return
	}
	m.ops++
	m.status = status
	if m.cursor > m.list.Size() {
		m.cursor = m.list.Size()
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("arraylist explorer"))
	b.WriteString("\n\n")

	perRow := (m.width - 2) / 8
	if perRow < 1 {
		perRow = 1
	}
	b.WriteString(viz.RenderSlots(m.list, viz.SlotOptions{
		Cursor:   m.cursor,
		MaxSlots: perRow * 4,
		PerRow:   perRow,
	}))
	b.WriteString("\n\n")

	fill := 0.0
	if m.list.Cap() > 0 {
		fill = float64(m.list.Size()) / float64(m.list.Cap())
	}
	b.WriteString(viz.ProgressBar(fill, 30))
	b.WriteString("  ")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		viz.Metric("cursor", fmt.Sprint(m.cursor)), "  ",
		viz.Metric("grows", fmt.Sprint(m.tracker.Events())), "  ",
		viz.Metric("copies", fmt.Sprint(m.tracker.Copies())), "  ",
		viz.Metric("ops", fmt.Sprint(m.ops)),
	))
	b.WriteString("\n\n")

	switch {
	case m.mode == modePrompt:
		b.WriteString(fmt.Sprintf("%s: %s█", actionNames[m.action], m.editBuf))
	case m.lastErr != nil:
		b.WriteString(viz.ErrorText.Render(m.lastErr.Error()))
	case m.status != "":
		b.WriteString(viz.Pass.Render(m.status))
	}
	b.WriteString("\n\n")

	if m.mode == modePrompt {
		b.WriteString(viz.KeyHint.Render("enter apply · esc cancel"))
	} else {
		b.WriteString(viz.KeyHint.Render("a append · i insert · s set · x remove at · d remove value · ←/→ move · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the explorer over list.
func Run(list *arraylist.ArrayList[string]) error {
	p := tea.NewProgram(newModel(list), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
