package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	monitorTab = iota
	propertiesTab
	expressionsTab
)

// TabSet is the row of tabs across the top of the panel
type TabSet struct {
	labels      []string
	selectedTab int
}

func NewTabSet(labels ...string) *TabSet {
	return &TabSet{labels: labels}
}

// SelectTab changes the active tab; out of range indexes are ignored
func (ts *TabSet) SelectTab(index int) *TabSet {
	if index >= 0 && index < len(ts.labels) {
		ts.selectedTab = index
	}
	return ts
}

// NextTab moves to the next tab (wraps around)
func (ts *TabSet) NextTab() *TabSet {
	if len(ts.labels) > 0 {
		ts.selectedTab = (ts.selectedTab + 1) % len(ts.labels)
	}
	return ts
}

// PrevTab moves to the previous tab (wraps around)
func (ts *TabSet) PrevTab() *TabSet {
	if len(ts.labels) > 0 {
		ts.selectedTab = (ts.selectedTab - 1 + len(ts.labels)) % len(ts.labels)
	}
	return ts
}

func (ts *TabSet) Selected() int {
	return ts.selectedTab
}

func (ts *TabSet) SelectedLabel() string {
	if len(ts.labels) == 0 {
		return ""
	}
	return ts.labels[ts.selectedTab]
}

// Render draws the tab bar with the active tab highlighted
func (ts *TabSet) Render() string {
	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Background(lipgloss.Color("235")).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170"))

	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("236"))

	var renderedTabs []string
	for i, label := range ts.labels {
		if i == ts.selectedTab {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(label))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (ts *TabSet) String() string {
	return ts.Render()
}
