package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/winprep/winprep/internal/orchestrate"
)

// Model is the Bubble Tea model for an install run.
type Model struct {
	// Fixed before the first step.
	Total int

	// Completed step lines, in event order.
	Lines []string

	// Label of the in-flight step, empty between steps.
	Current string

	// Done steps so far and the resulting percentage.
	DoneSteps int
	Percent   float64

	// Run state
	Done    bool
	Err     error
	Summary orchestrate.Summary

	// UI state
	Width int

	prog progress.Model
	spin spinner.Model
}

// NewModel creates a model for a plan of total steps.
func NewModel(total int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = activeStyle

	pr := progress.New(progress.WithDefaultGradient())

	return Model{
		Total: total,
		prog:  pr,
		spin:  sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Closing the display mid-run is best-effort: the run itself
		// is not cancelled, only the display goes away.
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		if w := msg.Width - 10; w > 10 {
			m.prog.Width = w
			if m.prog.Width > 60 {
				m.prog.Width = 60
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case StepEventMsg:
		m.applyEvent(msg.Event)

	case ProgressMsg:
		m.DoneSteps = msg.Done
		if msg.Total > 0 {
			m.Percent = float64(msg.Done) / float64(msg.Total)
		}

	case RunDoneMsg:
		m.Summary = msg.Summary
		m.Done = true
		return m, tea.Quit

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyEvent(ev orchestrate.Event) {
	if ev.Kind == orchestrate.EventStarted {
		m.Current = ev.Step.Label()
		return
	}

	// Terminal event for the in-flight step, or a trailing advisory
	// note that has no Started counterpart.
	m.Current = ""
	m.Lines = append(m.Lines, renderEventLine(ev))
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
