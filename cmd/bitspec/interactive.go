package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bitspec/compiler"
	"github.com/wippyai/bitspec/layout"
	"github.com/wippyai/bitspec/spec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD166"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEnterName modelState = iota
	stateSelectFormat
	stateShowOutput
)

type interactiveModel struct {
	err      error
	warn     error
	compiler *compiler.Compiler
	layout   *layout.Layout
	dir      string
	template string
	output   string
	input    textinput.Model
	selected int
	state    modelState
}

type templateMsg struct {
	err  error
	path string
}

type compiledMsg struct {
	err    error
	warn   error
	layout *layout.Layout
}

func newInteractiveModel(dir string, c *compiler.Compiler) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "spec name"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		compiler: c,
		dir:      dir,
		input:    ti,
		state:    stateEnterName,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.writeTemplate, textinput.Blink)
}

func (m *interactiveModel) writeTemplate() tea.Msg {
	path, err := spec.WriteTemplate(m.dir)
	return templateMsg{path: path, err: err}
}

func (m *interactiveModel) compile(name string) tea.Cmd {
	return func() tea.Msg {
		l, warn, err := compileSpec(m.compiler, m.dir, name)
		return compiledMsg{layout: l, warn: warn, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEnterName {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFormat && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFormat && m.selected < len(formats)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateEnterName:
				name := strings.TrimSpace(m.input.Value())
				if name == "" {
					return m, nil
				}
				m.err = nil
				return m, m.compile(name)

			case stateSelectFormat:
				m.output, m.err = render(m.layout, formats[m.selected].name)
				m.state = stateShowOutput

			case stateShowOutput:
				m.state = stateSelectFormat
				m.output = ""
				m.err = nil
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateSelectFormat:
				m.state = stateEnterName
				m.layout = nil
				m.warn = nil
				m.input.Focus()
			case stateShowOutput:
				m.state = stateSelectFormat
				m.output = ""
				m.err = nil
			}
			return m, nil
		}

	case templateMsg:
		m.template = msg.path
		m.err = msg.err
		return m, nil

	case compiledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.layout = msg.layout
		m.warn = msg.warn
		m.selected = 0
		m.state = stateSelectFormat
		m.input.Blur()
		return m, nil
	}

	if m.state == stateEnterName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bitspec"))
	b.WriteString(" ")
	b.WriteString(m.dir)
	b.WriteString("\n\n")

	switch m.state {
	case stateEnterName:
		if m.template != "" {
			b.WriteString(fmt.Sprintf("Template created at %s\n", nameStyle.Render(m.template)))
		}
		b.WriteString("Enter the name of the spec to compile:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter compile • ctrl+c quit"))

	case stateSelectFormat:
		b.WriteString(fmt.Sprintf("Compiled %s: %d fields, %d bytes per line\n",
			nameStyle.Render(m.layout.Name), m.layout.Len(), m.layout.TotalBytes()))
		if m.warn != nil {
			b.WriteString(warnStyle.Render(fmt.Sprintf("Warning: %v", m.warn)))
			b.WriteString("\n")
		}
		b.WriteString("\nSelect an output format:\n\n")
		for i, f := range formats {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + f.label))
			} else {
				b.WriteString("  " + f.label)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter show • esc back • q quit"))

	case stateShowOutput:
		b.WriteString(fmt.Sprintf("%s of %s:\n\n", formats[m.selected].label, nameStyle.Render(m.layout.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.output)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

// runInteractive runs the TUI and prints the last output shown so it stays
// in the scrollback.
func runInteractive(dir string, c *compiler.Compiler) error {
	p := tea.NewProgram(newInteractiveModel(dir, c))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*interactiveModel); ok && m.output != "" {
		fmt.Println(m.output)
	}
	return nil
}
