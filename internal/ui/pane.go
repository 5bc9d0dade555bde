package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pane is a bordered, titled box on the panel.
//
//	pane := NewPane("Tooltip", 40, 6).
//	    SetContent(text).
//	    SetFocused(true)
//	fmt.Println(pane.Render())
//
// Panes compose with Horizontal and Vertical.
type Pane struct {
	title       string
	content     string
	width       int
	height      int
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
}

// NewPane creates a pane with the default border and title colors
func NewPane(title string, width, height int) Pane {
	return Pane{
		title:  title,
		width:  width,
		height: height,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true),
	}
}

func (p Pane) SetContent(content string) Pane {
	p.content = content
	return p
}

func (p Pane) SetSize(width, height int) Pane {
	p.width = width
	p.height = height
	return p
}

// SetTitleColor colors the title with an ANSI-256 number
func (p Pane) SetTitleColor(c string) Pane {
	p.titleStyle = p.titleStyle.Foreground(lipColor(c))
	return p
}

// SetFocused highlights the border
func (p Pane) SetFocused(focused bool) Pane {
	if focused {
		p.borderStyle = p.borderStyle.BorderForeground(lipgloss.Color("170"))
	} else {
		p.borderStyle = p.borderStyle.BorderForeground(lipgloss.Color("240"))
	}
	return p
}

// Render draws the pane; content past the pane height is cut off
func (p Pane) Render() string {
	height := max(p.height, 1)
	var lines []string
	if p.title != "" {
		lines = append(lines, p.titleStyle.Render(p.title))
	}
	lines = append(lines, strings.Split(p.content, "\n")...)
	if len(lines) > height {
		lines = lines[:height]
	}

	return p.borderStyle.
		Width(max(p.width, 1)).
		Height(height).
		Render(strings.Join(lines, "\n"))
}
