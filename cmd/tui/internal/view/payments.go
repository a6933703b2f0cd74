package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/stauntonj/rently/internal/payment"
)

type paymentState int

const (
	paymentStateList paymentState = iota
	paymentStateBulkForm
)

// paymentItem wraps a payment to implement list.Item.
type paymentItem struct {
	payment  *payment.Payment
	selected bool
}

func (i paymentItem) Title() string {
	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.payment.Status))

	marker := "[ ]"
	if i.selected {
		marker = "[x]"
	}

	return fmt.Sprintf("%s %s  %s  %s  %s",
		marker, FormatDate(i.payment.DueDate), FormatAmount(i.payment.Amount), i.payment.Type, status)
}

func (i paymentItem) Description() string {
	return i.payment.Notes
}

func (i paymentItem) FilterValue() string {
	return string(i.payment.Status) + " " + i.payment.Notes
}

type PaymentsModel struct {
	CommonModel
	paymentService *payment.Service

	state paymentState
	list  list.Model
	form  *huh.Form

	payments []*payment.Payment
	selected map[uuid.UUID]bool

	loading bool
	status  string

	// Form field bindings
	formStatus payment.Status
	formNote   string
}

func NewPaymentsModel(paymentSvc *payment.Service) PaymentsModel {
	l := list.New([]list.Item{}, paymentItemDelegate{}, 0, 0)
	l.Title = "Payments"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return PaymentsModel{
		paymentService: paymentSvc,
		list:           l,
		selected:       map[uuid.UUID]bool{},
		loading:        true,
	}
}

func (m PaymentsModel) Title() string { return "Manage Payments" }

func (m PaymentsModel) ShortHelp() string {
	switch m.state {
	case paymentStateList:
		return "Esc: back | Space: select | b: bulk status | /: filter"
	case paymentStateBulkForm:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m PaymentsModel) Init() tea.Cmd {
	return m.loadPaymentsCmd()
}

func (m PaymentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPaymentsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.payments = msg.payments
		m.refreshListItems()

		if len(msg.payments) == 0 {
			m.status = "No payments found."
		}

		return m, nil

	case bulkStatusResultMsg:
		m.state = paymentStateList
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Updated %d payment(s).", msg.updated)
		m.selected = map[uuid.UUID]bool{}

		return m, m.loadPaymentsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case paymentStateList:
		return m.updateList(msg)
	case paymentStateBulkForm:
		return m.updateBulkForm(msg)
	}

	return m, nil
}

func (m PaymentsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc:
			if m.list.FilterState() == list.Filtering {
				break // let the list handle it (close filter)
			}

			return m, Back
		case keyMsg.String() == " ":
			if m.list.FilterState() == list.Filtering {
				break
			}

			if item, ok := m.list.SelectedItem().(paymentItem); ok {
				m.selected[item.payment.ID] = !m.selected[item.payment.ID]
				m.refreshListItems()
			}

			return m, nil
		case keyMsg.String() == "b":
			if m.list.FilterState() == list.Filtering {
				break
			}

			return m.startBulkForm()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m PaymentsModel) startBulkForm() (tea.Model, tea.Cmd) {
	if len(m.selectedIDs()) == 0 {
		m.status = "Select at least one payment first."
		return m, nil
	}

	m.formStatus = payment.StatusCompleted
	m.formNote = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[payment.Status]().
				Key("status").
				Title("New status").
				Options(
					huh.NewOption("Completed", payment.StatusCompleted),
					huh.NewOption("Pending", payment.StatusPending),
					huh.NewOption("Late", payment.StatusLate),
					huh.NewOption("Failed", payment.StatusFailed),
					huh.NewOption("Cancelled", payment.StatusCancelled),
				).
				Value(&m.formStatus),

			huh.NewInput().
				Key("note").
				Title("Note (optional)").
				Value(&m.formNote),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = paymentStateBulkForm

	return m, m.form.Init()
}

func (m PaymentsModel) updateBulkForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = paymentStateList
			m.form = nil

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

	return m, m.bulkStatusCmd()
}

func (m PaymentsModel) View() string {
	switch m.state {
	case paymentStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading payments...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		selectedLine := lipgloss.NewStyle().Faint(true).
			Render(fmt.Sprintf("%d selected", len(m.selectedIDs()))) + "\n"

		return lipgloss.NewStyle().Padding(1).Render(statusLine + selectedLine + m.list.View())

	case paymentStateBulkForm:
		if m.form == nil {
			return ""
		}

		header := lipgloss.NewStyle().Bold(true).
			Render(fmt.Sprintf("Bulk status update (%d payments)", len(m.selectedIDs())))

		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.form.View())
	}

	return ""
}

func (m PaymentsModel) selectedIDs() []uuid.UUID {
	var ids []uuid.UUID

	for _, p := range m.payments {
		if m.selected[p.ID] {
			ids = append(ids, p.ID)
		}
	}

	return ids
}

func (m *PaymentsModel) refreshListItems() {
	items := make([]list.Item, len(m.payments))
	for i, p := range m.payments {
		items[i] = paymentItem{payment: p, selected: m.selected[p.ID]}
	}

	m.list.SetItems(items)
}

// Messages

type loadPaymentsMsg struct {
	payments []*payment.Payment
	err      error
}

func (m PaymentsModel) loadPaymentsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		payments, err := m.paymentService.List(ctx, payment.ListFilter{})

		return loadPaymentsMsg{payments: payments, err: err}
	}
}

type bulkStatusResultMsg struct {
	updated int
	err     error
}

func (m PaymentsModel) bulkStatusCmd() tea.Cmd {
	ids := m.selectedIDs()
	status := m.formStatus
	note := m.formNote
	svc := m.paymentService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := svc.ApplyBulkStatus(ctx, payment.BulkStatusParams{
			PaymentIDs: ids,
			Status:     status,
			Note:       note,
			Actor:      "tui",
		})
		if err != nil {
			return bulkStatusResultMsg{err: err}
		}

		return bulkStatusResultMsg{updated: result.UpdatedCount}
	}
}

// paymentItemDelegate renders items in the list.
type paymentItemDelegate struct{}

func (d paymentItemDelegate) Height() int                             { return 2 }
func (d paymentItemDelegate) Spacing() int                            { return 0 }
func (d paymentItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d paymentItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(paymentItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	desc := i.Description()
	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}
