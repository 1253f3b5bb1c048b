// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	severityStyles = map[Severity]lipgloss.Style{
		SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	descriptionStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
)

// Printer renders notifications on a terminal.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *Printer) Notify(_ context.Context, n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, Render(n))
}

// Render formats a notification as a two line block.
func Render(n Notification) string {
	style, ok := severityStyles[n.Severity]
	if !ok {
		style = lipgloss.NewStyle()
	}

	header := style.Render(fmt.Sprintf("[%s]", n.Severity)) + " " + titleStyle.Render(n.Title)
	if n.Description == "" {
		return header
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, descriptionStyle.Render(n.Description))
}

func NewPrinter(out io.Writer) *Printer {
	p := new(Printer)
	p.out = out

	return p
}
