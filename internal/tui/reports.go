package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/store"
	"github.com/sadopc/ticktock/internal/timesheet"
)

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	summaries []store.WeeklySummary
	target    float64

	chart barchart.Model
}

func newReportsModel(s *store.Store, target float64) reportsModel {
	return reportsModel{
		store:  s,
		target: target,
		chart:  barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	summaries []store.WeeklySummary
	err       error
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		summaries, err := r.store.GetWeeklySummary()
		return reportsDataMsg{summaries: summaries, err: err}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		if msg.err != nil {
			return r, statusCmd(fmt.Sprintf("Report error: %v", msg.err), statusError)
		}
		r.summaries = msg.summaries
		r.buildChart()
		return r, nil
	}
	return r, nil
}

func (r *reportsModel) buildChart() {
	chartWidth := max(r.width-8, 20)
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, s := range r.summaries {
		style := lipgloss.NewStyle().Foreground(statusColor(timesheet.Status(s.Status)))
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("W%d", s.Week),
			Values: []barchart.BarValue{{
				Name:  s.Status,
				Value: s.Hours,
				Style: style,
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) totalHours() float64 {
	var total float64
	for _, s := range r.summaries {
		total += s.Hours
	}
	return total
}

func (r reportsModel) view() string {
	w := r.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ",
		mutedStyle.Render(fmt.Sprintf("%s hrs logged across %d weeks", formatHours(r.totalHours()), len(r.summaries))),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", r.renderLegend(), "", r.renderSummaryTable(w),
		),
	)
}

func (r reportsModel) renderSummaryTable(w int) string {
	if len(r.summaries) == 0 {
		return mutedStyle.Render("  No timesheets yet")
	}

	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-6s %-12s %8s %8s %9s", "Week", "Status", "Hours", "Records", "Target"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 47))))

	for _, s := range r.summaries {
		pct := timesheet.Progress(s.Hours, r.target) * 100
		dot := lipgloss.NewStyle().Foreground(statusColor(timesheet.Status(s.Status))).Render("●")
		rows = append(rows, fmt.Sprintf("  %-6d %s %-10s %8s %8d %8.0f%%",
			s.Week, dot, s.Status, formatHours(s.Hours), s.Records, pct,
		))
	}

	return strings.Join(rows, "\n")
}

func (r reportsModel) renderLegend() string {
	var items []string
	for _, s := range timesheet.Statuses() {
		dot := lipgloss.NewStyle().Foreground(statusColor(s)).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, s))
	}
	return "  " + strings.Join(items, "  ")
}
