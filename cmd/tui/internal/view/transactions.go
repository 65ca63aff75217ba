package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/insights"
	"github.com/spendlens/spendlens/internal/session/store"
	"github.com/spendlens/spendlens/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateSearch
	txStateForm
	txStateConfirmDelete
)

var txRanges = []insights.DateRange{
	insights.RangeAllTime,
	insights.RangeToday,
	insights.RangeThisWeek,
	insights.RangeThisMonth,
	insights.RangeThisYear,
}

var txTypes = []insights.TypeFilter{
	insights.TypeAll,
	insights.TypeIncomeOnly,
	insights.TypeExpenseOnly,
}

var txSorts = []insights.SortKey{
	insights.SortDateDesc,
	insights.SortDateAsc,
	insights.SortAmountDesc,
	insights.SortAmountAsc,
}

func rangeLabel(r insights.DateRange) string {
	switch r {
	case insights.RangeToday:
		return "Today"
	case insights.RangeThisWeek:
		return "This Week"
	case insights.RangeThisMonth:
		return "This Month"
	case insights.RangeThisYear:
		return "This Year"
	}

	return "All Time"
}

func typeLabel(t insights.TypeFilter) string {
	switch t {
	case insights.TypeIncomeOnly:
		return "Income"
	case insights.TypeExpenseOnly:
		return "Expense"
	}

	return "All"
}

func sortLabel(s insights.SortKey) string {
	switch s {
	case insights.SortDateAsc:
		return "Date ↑"
	case insights.SortAmountDesc:
		return "Amount ↓"
	case insights.SortAmountAsc:
		return "Amount ↑"
	}

	return "Date ↓"
}

type TransactionsModel struct {
	CommonModel
	store *store.Store

	state   txState
	table   table.Model
	search  textinput.Model
	form    *huh.Form
	visible []transaction.Transaction

	rangeIdx int
	typeIdx  int
	sortIdx  int

	editingID string
	loading   bool
	err       error
	status    string

	formType     string
	formTitle    string
	formAmount   string
	formCategory string
	formDate     string
	formMethod   string
	formDesc     string
}

func NewTransactionsModel(s *store.Store) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Title", Width: 28},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(ts)

	search := textinput.New()
	search.Placeholder = "title, category or description"
	search.CharLimit = 64

	m := TransactionsModel{
		store:   s,
		table:   t,
		search:  search,
		loading: s.Len() == 0,
	}
	m.refreshTable()

	return m
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateSearch:
		return "Enter/Esc: done typing"
	case txStateForm:
		return "Navigate form | Esc: cancel"
	case txStateConfirmDelete:
		return "y: delete | n: cancel"
	}

	return "Esc: back | /: search | f: range | t: type | s: sort | a: add | e: edit | x: delete | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	if m.store.Len() == 0 {
		return m.refreshCmd()
	}

	return nil
}

func (m TransactionsModel) criteria() insights.Criteria {
	return insights.Criteria{
		Search: m.search.Value(),
		Range:  txRanges[m.rangeIdx],
		Type:   txTypes[m.typeIdx],
		Sort:   txSorts[m.sortIdx],
	}
}

func (m *TransactionsModel) refreshTable() {
	m.visible = insights.Query(m.store.Snapshot(), m.criteria(), time.Now())

	rows := make([]table.Row, 0, len(m.visible))
	for _, tx := range m.visible {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Title,
			FormatAmount(tx.Amount),
			tx.Category,
		})
	}

	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m TransactionsModel) selected() (transaction.Transaction, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return transaction.Transaction{}, false
	}

	return m.visible[idx], true
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case txRefreshMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.refreshTable()

		return m, nil

	case txSaveMsg:
		if msg.err != nil {
			// Keep the dialog open with the submitted values so the user
			// can correct and resubmit.
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		m.status = ""
		m.state = txStateBrowse
		m.form = nil
		m.table.Focus()
		m.refreshTable()

		return m, nil

	case txDeleteMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = ""
		}

		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateSearch:
		return m.updateSearch(msg)
	case txStateForm:
		return m.updateForm(msg)
	case txStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.refreshCmd()
		case "/":
			m.state = txStateSearch
			m.table.Blur()
			return m, m.search.Focus()
		case "f":
			m.rangeIdx = (m.rangeIdx + 1) % len(txRanges)
			m.refreshTable()
			return m, nil
		case "t":
			m.typeIdx = (m.typeIdx + 1) % len(txTypes)
			m.refreshTable()
			return m, nil
		case "s":
			m.sortIdx = (m.sortIdx + 1) % len(txSorts)
			m.refreshTable()
			return m, nil
		case "a":
			return m.enterForm(nil)
		case "e":
			if tx, ok := m.selected(); ok {
				return m.enterForm(&tx)
			}
			return m, nil
		case "x":
			if _, ok := m.selected(); ok {
				m.state = txStateConfirmDelete
				m.table.Blur()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.state = txStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshTable()

	return m, cmd
}

func (m TransactionsModel) enterForm(tx *transaction.Transaction) (tea.Model, tea.Cmd) {
	if tx != nil {
		m.editingID = tx.ID
		m.formType = string(tx.Type)
		m.formTitle = tx.Title
		m.formAmount = tx.Amount.String()
		m.formCategory = tx.Category
		m.formDate = ""
		if tx.HasDate() {
			m.formDate = tx.Date.Format("2006-01-02")
		}
		m.formMethod = tx.PaymentMethod
		m.formDesc = tx.Description
	} else {
		m.editingID = ""
		m.formType = string(transaction.TypeExpense)
		m.formTitle = ""
		m.formAmount = ""
		m.formCategory = ""
		m.formDate = time.Now().Format("2006-01-02")
		m.formMethod = ""
		m.formDesc = ""
	}

	m.form = m.buildForm()
	m.state = txStateForm
	m.table.Blur()

	return m, m.form.Init()
}

// buildForm makes the add/edit form, seeded from the current form field
// values.
func (m *TransactionsModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.TypeExpense)),
					huh.NewOption("Income", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					amount, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a valid amount")
					}
					if amount.IsNegative() {
						return fmt.Errorf("amount cannot be negative")
					}
					return nil
				}),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD, blank for none").
				Value(&m.formDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("payment_method").
				Title("Payment Method").
				Value(&m.formMethod),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Read the submitted values back through the form. The Value bindings
	// point into a stale copy of this model, so only the form itself holds
	// what was actually typed.
	m.formType = m.form.GetString("type")
	m.formTitle = m.form.GetString("title")
	m.formAmount = m.form.GetString("amount")
	m.formCategory = m.form.GetString("category")
	m.formDate = m.form.GetString("date")
	m.formMethod = m.form.GetString("payment_method")
	m.formDesc = m.form.GetString("description")

	return m, m.saveCmd()
}

func (m TransactionsModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		m.state = txStateBrowse
		m.table.Focus()

		if tx, ok := m.selected(); ok {
			return m, m.deleteCmd(tx.ID)
		}

		return m, nil
	case "n", "esc":
		m.state = txStateBrowse
		m.table.Focus()

		return m, nil
	}

	return m, nil
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	active := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render

	header := fmt.Sprintf(
		"[f] Range: %s | [t] Type: %s | [s] Sort: %s",
		active(rangeLabel(txRanges[m.rangeIdx])),
		active(typeLabel(txTypes[m.typeIdx])),
		active(sortLabel(txSorts[m.sortIdx])),
	)

	searchLine := "Search: " + m.search.View()

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		searchLine,
		tableView,
	)

	switch m.state {
	case txStateForm:
		title := "Add Transaction"
		if m.editingID != "" {
			title = "Edit Transaction"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)

	case txStateConfirmDelete:
		prompt := "Delete this transaction? (y/n)"
		if tx, ok := m.selected(); ok {
			prompt = fmt.Sprintf("Delete %q? (y/n)", tx.Title)
		}

		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(prompt)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	content += "\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m TransactionsModel) draftFromForm() transaction.Draft {
	amount, _ := decimal.NewFromString(strings.TrimSpace(m.formAmount))

	var date time.Time
	if s := strings.TrimSpace(m.formDate); s != "" {
		date, _ = time.Parse(time.DateOnly, s)
	}

	return transaction.Draft{
		Type:          transaction.Type(m.formType),
		Title:         strings.TrimSpace(m.formTitle),
		Amount:        amount,
		Category:      strings.TrimSpace(m.formCategory),
		Date:          date,
		PaymentMethod: strings.TrimSpace(m.formMethod),
		Description:   strings.TrimSpace(m.formDesc),
	}
}

// Messages

type txRefreshMsg struct {
	err error
}

func (m TransactionsModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		return txRefreshMsg{err: m.store.Refresh(ctx)}
	}
}

type txSaveMsg struct {
	err error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	id := m.editingID
	draft := m.draftFromForm()

	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		var err error
		if id == "" {
			_, err = m.store.Create(ctx, draft)
		} else {
			_, err = m.store.Update(ctx, id, draft)
		}

		return txSaveMsg{err: err}
	}
}

type txDeleteMsg struct {
	err error
}

func (m TransactionsModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		return txDeleteMsg{err: m.store.Delete(ctx, id)}
	}
}
