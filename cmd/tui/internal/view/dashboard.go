package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/insights"
	"github.com/spendlens/spendlens/internal/session/store"
)

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

var dashboardPeriods = []insights.Period{
	insights.PeriodAll,
	insights.PeriodDay,
	insights.PeriodMonth,
	insights.PeriodYear,
}

func periodLabel(p insights.Period) string {
	switch p {
	case insights.PeriodDay:
		return "Today"
	case insights.PeriodMonth:
		return "This Month"
	case insights.PeriodYear:
		return "This Year"
	}

	return "All Time"
}

type DashboardModel struct {
	CommonModel
	store *store.Store

	periodIdx int
	loading   bool
	err       error
}

func NewDashboardModel(s *store.Store) DashboardModel {
	return DashboardModel{store: s, loading: s.Len() == 0}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	return "Esc: back | p: cycle period | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	if m.store.Len() == 0 {
		return m.refreshCmd()
	}

	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardRefreshMsg:
		m.loading = false
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "p":
			m.periodIdx = (m.periodIdx + 1) % len(dashboardPeriods)
			return m, nil
		case "r":
			m.loading = true
			return m, m.refreshCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	period := dashboardPeriods[m.periodIdx]
	filtered := insights.FilterByPeriod(m.store.Snapshot(), period, time.Now())
	totals := insights.Summarize(filtered)

	header := fmt.Sprintf("Period: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(periodLabel(period)))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render("Income\n"+incomeStyle.Render(FormatAmount(totals.Income))),
		cardStyle.Render("Expenses\n"+expenseStyle.Render(FormatAmount(totals.Expenses))),
		cardStyle.Render("Balance\n"+FormatAmount(totals.Balance)),
	)

	sections := []string{
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		cards,
		renderBarChart(insights.Bucketize(filtered, period)),
		renderCategories(insights.GroupExpensesByCategory(filtered)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	content += "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(content)
}

const maxBarWidth = 30

func renderBarChart(buckets []insights.Bucket) string {
	if len(buckets) == 0 {
		return lipgloss.NewStyle().Faint(true).PaddingTop(1).Render("No dated transactions in this period.")
	}

	peak := decimal.Zero
	for _, b := range buckets {
		if b.Income.GreaterThan(peak) {
			peak = b.Income
		}
		if b.Expense.GreaterThan(peak) {
			peak = b.Expense
		}
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Income vs Expenses"))
	sb.WriteString("\n")

	for _, b := range buckets {
		sb.WriteString(fmt.Sprintf("%-10s %s %s\n", b.Label,
			incomeStyle.Render(bar(b.Income, peak)),
			FormatAmount(b.Income)))
		sb.WriteString(fmt.Sprintf("%-10s %s %s\n", "",
			expenseStyle.Render(bar(b.Expense, peak)),
			FormatAmount(b.Expense)))
	}

	return lipgloss.NewStyle().PaddingTop(1).Render(sb.String())
}

func bar(value, peak decimal.Decimal) string {
	if peak.IsZero() || !value.IsPositive() {
		return ""
	}

	width := value.Div(peak).Mul(decimal.NewFromInt(maxBarWidth)).IntPart()
	if width < 1 {
		width = 1
	}

	return strings.Repeat("█", int(width))
}

func renderCategories(categories []insights.CategoryTotal) string {
	if len(categories) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Expenses by Category"))
	sb.WriteString("\n")

	for _, c := range categories {
		label := c.Category
		if label == "" {
			label = "(uncategorized)"
		}

		sb.WriteString(fmt.Sprintf("%-20s %s\n", label, expenseStyle.Render(FormatAmount(c.Amount))))
	}

	return lipgloss.NewStyle().PaddingTop(1).Render(sb.String())
}

// Messages

type dashboardRefreshMsg struct {
	err error
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		return dashboardRefreshMsg{err: m.store.Refresh(ctx)}
	}
}
