package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	handleseq "github.com/wippyai/handle-seq"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	guard    *handleseq.SliceGuard[Item, *Item]
	items    []*Item
	input    textinput.Model
	status   string
	failed   bool
	count    int
	selected int
	state    modelState
}

type opInfo struct {
	name     string
	desc     string
	needsArg bool
	prompt   string
}

var ops = []opInfo{
	{name: "sort", desc: "order by seq"},
	{name: "unique", desc: "collapse adjacent duplicates"},
	{name: "remove", desc: "drop every item with a seq", needsArg: true, prompt: "seq"},
	{name: "refresh", desc: "replace each item with a clone of itself"},
	{name: "deep copy", desc: "duplicate the sequence, then drop the copies"},
	{name: "append", desc: "allocate one more item", needsArg: true, prompt: "seq"},
	{name: "arm failure", desc: "make an upcoming duplication fail", needsArg: true, prompt: "fail after"},
	{name: "reset", desc: "drop everything and rebuild"},
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArg
)

func newInteractiveModel(count int) *interactiveModel {
	m := &interactiveModel{
		count: count,
		state: stateSelectOp,
	}
	m.items = buildSequence(count)
	m.guard = handleseq.NewSliceGuard(&m.items)
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.guard.Drop()
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				op := ops[m.selected]
				if op.needsArg {
					m.prepareInput(op)
					m.state = stateInputArg
					return m, nil
				}
				m.apply(op, 0)

			case stateInputArg:
				m.state = stateSelectOp
				v, err := strconv.Atoi(m.input.Value())
				if err != nil {
					m.status = fmt.Sprintf("not a number: %q", m.input.Value())
					m.failed = true
					return m, nil
				}
				m.apply(ops[m.selected], v)
			}

		case "esc":
			if m.state == stateInputArg {
				m.state = stateSelectOp
			}
		}
	}

	if m.state == stateInputArg {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput(op opInfo) {
	ti := textinput.New()
	ti.Placeholder = "number"
	ti.Prompt = op.prompt + ": "
	ti.Width = 20
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) apply(op opInfo, arg int) {
	m.failed = false

	switch op.name {
	case "sort":
		slices.SortFunc(m.items, handleseq.DerefBoth(func(a, b Item) int {
			return cmp.Compare(a.Seq, b.Seq)
		}))
		m.status = fmt.Sprintf("sorted %d items", len(m.items))

	case "unique":
		before := len(m.items)
		m.items = m.items[:handleseq.Unique(m.items)]
		m.status = fmt.Sprintf("dropped %d adjacent duplicates", before-len(m.items))

	case "remove":
		before := len(m.items)
		m.items = m.items[:handleseq.RemoveFunc(m.items, func(v Item) bool {
			return v.Seq == arg
		})]
		m.status = fmt.Sprintf("dropped %d items with seq=%d", before-len(m.items), arg)

	case "refresh":
		// Every handle is dropped and replaced by a clone of its own pointee.
		n, err := handleseq.ReplaceClone(m.items, m.items)
		if err != nil {
			m.status = fmt.Sprintf("refresh stopped after %d items: %v", n, err)
			m.failed = true
			return
		}
		m.status = fmt.Sprintf("refreshed %d items in place", n)

	case "deep copy":
		copies, err := handleseq.DeepCopy(m.items)
		if err != nil {
			m.status = fmt.Sprintf("deep copy failed cleanly: %v", err)
			m.failed = true
			return
		}
		n := len(copies)
		handleseq.NewSliceGuard(&copies).Drop()
		m.status = fmt.Sprintf("deep copied %d items, then dropped the copies", n)

	case "append":
		m.items = append(m.items, NewItem(arg))
		m.status = fmt.Sprintf("appended seq=%d", arg)

	case "arm failure":
		if arg < 1 {
			m.status = "fail after must be at least 1"
			m.failed = true
			return
		}
		ArmFailure(arg)
		m.status = fmt.Sprintf("failure armed: duplication %d from now will fail", arg)

	case "reset":
		m.guard.Drop()
		m.items = buildSequence(m.count)
		m.guard.SetSlice(&m.items)
		m.status = fmt.Sprintf("rebuilt sequence with %d items", len(m.items))
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Handle Sequence Lab"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Sequence (%d items):\n", len(m.items)))
	if len(m.items) == 0 {
		b.WriteString(helpStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		b.WriteString(fmt.Sprintf("  [%2d] %v  %s\n", i, it, addrStyle.Render(fmt.Sprintf("%p", it))))
	}
	b.WriteString("\n")

	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(resultStyle.Render(m.status))
		}
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateSelectOp:
		for i, op := range ops {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatOp(op)))
			} else {
				b.WriteString(cursor + m.formatOp(op))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.formatStats())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputArg:
		op := ops[m.selected]
		b.WriteString(fmt.Sprintf("Running %s\n\n", opStyle.Render(op.name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.formatStats())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))
	}

	return b.String()
}

func (m *interactiveModel) formatOp(op opInfo) string {
	return opStyle.Render(op.name) + "  " + helpStyle.Render(op.desc)
}

func (m *interactiveModel) formatStats() string {
	s := fmt.Sprintf("live %d • allocated %d • dropped %d", live(), stats.allocated, stats.dropped)
	if stats.doubleDrops > 0 {
		s += errorStyle.Render(fmt.Sprintf(" • double drops %d", stats.doubleDrops))
	}
	if FailureArmed() {
		s += errorStyle.Render(" • failure armed")
	}
	return s
}

func runInteractive(count int) error {
	p := tea.NewProgram(newInteractiveModel(count), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
