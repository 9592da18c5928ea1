package tui

import (
	"fmt"
	"strings"

	"github.com/winprep/winprep/internal/orchestrate"
)

func renderView(m Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("winprep"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d steps", m.Total)))
	b.WriteString("\n\n")

	for _, line := range m.Lines {
		b.WriteString("  " + line + "\n")
	}

	if m.Current != "" {
		b.WriteString("  " + m.spin.View() + activeStyle.Render(m.Current) + "\n")
	}

	b.WriteString("\n  " + m.prog.ViewAs(m.Percent))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", m.DoneSteps, m.Total)))
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(failStyle.Render(fmt.Sprintf("  Error: %v", m.Err)) + "\n")
	case m.Done:
		b.WriteString(okStyle.Render("  Done") + dimStyle.Render(fmt.Sprintf(
			"  %d installed, %d already present, %d failed",
			m.Summary.Succeeded, m.Summary.AlreadyInstalled, m.Summary.Failed)) + "\n")
	}

	b.WriteString(footerStyle.Render("  q to close"))
	b.WriteString("\n")

	return b.String()
}

func renderEventLine(ev orchestrate.Event) string {
	switch ev.Kind {
	case orchestrate.EventAlreadyInstalled:
		return skipStyle.Render(checkMark) + " " + ev.String()
	case orchestrate.EventSucceeded:
		return okStyle.Render(checkMark) + " " + ev.String()
	case orchestrate.EventFailed:
		return failStyle.Render(crossMark) + " " + ev.String()
	case orchestrate.EventInfo:
		return infoStyle.Render(infoMark) + " " + ev.String()
	}
	return ev.String()
}
