package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	shortestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input  textinput.Model
	report string
	errMsg string
	use32  bool
}

func newInteractiveModel(use32 bool) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "3.14159 or 0x400921fb54442d18"
	ti.Prompt = "value: "
	ti.Width = 40
	ti.Focus()
	return &interactiveModel{input: ti, use32: use32}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			m.use32 = !m.use32
			m.inspect()
			return m, nil

		case "enter":
			m.inspect()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inspect()
	return m, cmd
}

func (m *interactiveModel) inspect() {
	m.report = ""
	m.errMsg = ""

	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}

	if m.use32 {
		bits, err := parseInput32(raw)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		m.report = describe32(bits)
		return
	}

	bits, err := parseInput64(raw)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.report = describe64(bits)
}

func parseInput64(raw string) (uint64, error) {
	if hex, ok := strings.CutPrefix(raw, "0x"); ok {
		bits, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parse bits: %w", err)
		}
		return bits, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse value: %w", err)
	}
	return math.Float64bits(f), nil
}

func parseInput32(raw string) (uint32, error) {
	if hex, ok := strings.CutPrefix(raw, "0x"); ok {
		bits, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse bits: %w", err)
		}
		return uint32(bits), nil
	}
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, fmt.Errorf("parse value: %w", err)
	}
	return math.Float32bits(float32(f)), nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	width := "float64"
	if m.use32 {
		width = "float32"
	}
	b.WriteString(titleStyle.Render("Float Inspector"))
	b.WriteString(" ")
	b.WriteString(width)
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	case m.report != "":
		for _, line := range strings.Split(strings.TrimRight(m.report, "\n"), "\n") {
			label, value, found := strings.Cut(line, ":")
			if !found {
				b.WriteString(line)
				b.WriteString("\n")
				continue
			}
			style := valueStyle
			if label == "shortest" {
				style = shortestStyle
			}
			b.WriteString(labelStyle.Render(label + ":"))
			b.WriteString(style.Render(value))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter inspect • ctrl+t toggle width • esc quit"))
	return b.String()
}

func runInteractive(use32 bool) error {
	p := tea.NewProgram(newInteractiveModel(use32), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
