package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
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

type modelState int

const (
	stateSelectType modelState = iota
	stateInputValue
	stateShowDump
)

type interactiveModel struct {
	err      error
	names    []string
	selected int
	input    textinput.Model
	dump     string
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{
		names: typeNames(),
		state: stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.prepareInput()
				m.state = stateInputValue

			case stateInputValue:
				m.inspect()
				m.state = stateShowDump

			case stateShowDump:
				m.state = stateSelectType
				m.dump = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputValue:
				m.state = stateSelectType
			case stateShowDump:
				m.state = stateSelectType
				m.dump = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "value (empty for NULL)"
	ti.Prompt = "value: "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) inspect() {
	typ, err := parseType(m.names[m.selected])
	if err != nil {
		m.err = err
		return
	}

	const size = 64
	data := godbc.NewRegion(size)
	ind := godbc.NewRegion(8)
	buf := appbuf.New(typ, data, size, ind)

	res, err := storeAuto(buf, m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.dump = describe(buf, data, res)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Buffer Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a target buffer type:\n\n")
		for i, name := range m.names {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + typeStyle.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter pick • q quit"))

	case stateInputValue:
		b.WriteString(fmt.Sprintf("Target type: %s\n\n", typeStyle.Render(m.names[m.selected])))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter store • esc back"))

	case stateShowDump:
		b.WriteString(fmt.Sprintf("Stored into %s:\n\n", typeStyle.Render(m.names[m.selected])))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.dump))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
