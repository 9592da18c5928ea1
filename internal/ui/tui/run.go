package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/winprep/winprep/internal/orchestrate"
)

// programReporter forwards orchestrator events to the Bubble Tea
// program. tea.Program.Send preserves send order, so the display sees
// events exactly as the single run goroutine emits them.
type programReporter struct {
	p *tea.Program
}

func (r programReporter) Event(ev orchestrate.Event) {
	r.p.Send(StepEventMsg{Event: ev})
}

func (r programReporter) Progress(done, total int) {
	r.p.Send(ProgressMsg{Done: done, Total: total})
}

// Run wraps an install run with the progress TUI. runFn executes the
// plan against the given reporter in a background goroutine and returns
// the run summary; the TUI owns the terminal until the run finishes or
// the user closes the display.
func Run(total int, runFn func(rep orchestrate.Reporter) orchestrate.Summary) (orchestrate.Summary, error) {
	m := NewModel(total)
	p := tea.NewProgram(m)

	go func() {
		summary := runFn(programReporter{p: p})
		p.Send(RunDoneMsg{Summary: summary})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return orchestrate.Summary{}, fmt.Errorf("TUI error: %w", err)
	}

	fm, ok := finalModel.(Model)
	if !ok {
		return orchestrate.Summary{}, fmt.Errorf("unexpected final model type %T", finalModel)
	}
	if fm.Err != nil {
		return fm.Summary, fm.Err
	}
	return fm.Summary, nil
}
