package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WrapTable is a lipgloss table that wraps into several tables side by
// side once its rows exceed maxHeight
type WrapTable struct {
	headers     []string
	rows        [][]string
	maxHeight   int
	borderStyle lipgloss.Style
	headerStyle lipgloss.Style
}

func NewWrapTable() *WrapTable {
	return &WrapTable{
		borderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		headerStyle: lipgloss.NewStyle().Bold(true),
	}
}

func (wt *WrapTable) Headers(headers ...string) *WrapTable {
	wt.headers = headers
	return wt
}

func (wt *WrapTable) Rows(rows ...[]string) *WrapTable {
	wt.rows = rows
	return wt
}

// MaxHeight sets the height a single table may take, borders included
func (wt *WrapTable) MaxHeight(height int) *WrapTable {
	wt.maxHeight = height
	return wt
}

// HeaderColor colors the header row with an ANSI-256 number
func (wt *WrapTable) HeaderColor(c string) *WrapTable {
	wt.headerStyle = wt.headerStyle.Foreground(lipColor(c))
	return wt
}

func (wt *WrapTable) build(rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(wt.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return wt.headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(wt.headers...).
		Rows(rows...).
		String()
}

func (wt *WrapTable) Render() string {
	if len(wt.rows) == 0 {
		return ""
	}

	// header line plus top, bottom and header separator borders
	rowsPerTable := len(wt.rows)
	if wt.maxHeight > 0 {
		rowsPerTable = max(wt.maxHeight-4, 1)
	}
	if len(wt.rows) <= rowsPerTable {
		return wt.build(wt.rows)
	}

	var tables []string
	for i := 0; i < len(wt.rows); i += rowsPerTable {
		end := min(i+rowsPerTable, len(wt.rows))
		tables = append(tables, wt.build(wt.rows[i:end]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tables...)
}

func (wt *WrapTable) String() string {
	return wt.Render()
}
