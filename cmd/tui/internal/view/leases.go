package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stauntonj/rently/internal/lease"
	"github.com/stauntonj/rently/internal/payment"
)

type leaseState int

const (
	leaseStateList leaseState = iota
	leaseStateStats
)

// leaseItem wraps a lease to implement list.Item.
type leaseItem struct {
	lease *lease.Lease
}

func (i leaseItem) Title() string {
	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.lease.Status))

	end := "open"
	if !i.lease.EndDate.IsZero() {
		end = FormatDate(i.lease.EndDate)
	}

	return fmt.Sprintf("%s -> %s  %s/%s  %s",
		FormatDate(i.lease.StartDate), end, FormatAmount(i.lease.MonthlyRent), i.lease.Frequency, status)
}

func (i leaseItem) Description() string {
	return fmt.Sprintf("Tenant: %s", i.lease.TenantID)
}

func (i leaseItem) FilterValue() string {
	return i.lease.TenantID.String()
}

type LeasesModel struct {
	CommonModel
	leaseService   *lease.Service
	paymentService *payment.Service

	state leaseState
	list  list.Model

	leases        []*lease.Lease
	selectedLease *lease.Lease
	stats         *lease.Stats

	loading bool
	status  string
}

func NewLeasesModel(leaseSvc *lease.Service, paymentSvc *payment.Service) LeasesModel {
	l := list.New([]list.Item{}, leaseItemDelegate{}, 0, 0)
	l.Title = "Leases"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return LeasesModel{
		leaseService:   leaseSvc,
		paymentService: paymentSvc,
		list:           l,
		loading:        true,
	}
}

func (m LeasesModel) Title() string { return "Manage Leases" }

func (m LeasesModel) ShortHelp() string {
	switch m.state {
	case leaseStateList:
		return "Esc: back | Enter: stats | m: materialize payments | /: filter"
	case leaseStateStats:
		return "Esc: back to list"
	}

	return ""
}

func (m LeasesModel) Init() tea.Cmd {
	return m.loadLeasesCmd()
}

func (m LeasesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLeasesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.leases = msg.leases
		m.refreshListItems()

		if len(msg.leases) == 0 {
			m.status = "No leases found."
		}

		return m, nil

	case loadStatsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = leaseStateList

			return m, nil
		}

		m.stats = msg.stats
		m.state = leaseStateStats

		return m, nil

	case materializeResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error materializing: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Materialized %d payment(s).", msg.created)

		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case leaseStateList:
		return m.updateList(msg)
	case leaseStateStats:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			m.state = leaseStateList
			m.stats = nil

			return m, nil
		}

		return m, nil
	}

	return m, nil
}

func (m LeasesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc:
			if m.list.FilterState() == list.Filtering {
				break // let the list handle it (close filter)
			}

			return m, Back
		case keyMsg.Type == tea.KeyEnter:
			if m.list.FilterState() == list.Filtering {
				break
			}

			selected, ok := m.list.SelectedItem().(leaseItem)
			if !ok {
				return m, nil
			}

			m.selectedLease = selected.lease

			return m, m.loadStatsCmd(selected.lease)
		case keyMsg.String() == "m":
			if m.list.FilterState() == list.Filtering {
				break
			}

			selected, ok := m.list.SelectedItem().(leaseItem)
			if !ok {
				return m, nil
			}

			m.status = "Materializing payments..."

			return m, m.materializeCmd(selected.lease)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m LeasesModel) View() string {
	switch m.state {
	case leaseStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading leases...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())

	case leaseStateStats:
		return lipgloss.NewStyle().Padding(1).Render(m.statsView())
	}

	return ""
}

func (m LeasesModel) statsView() string {
	if m.stats == nil || m.selectedLease == nil {
		return ""
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"Lease %s\n\nTotal Paid: %s\nTotal Due:  %s\nBalance:    %s\n\nPending: %d  Late: %d  Undefined: %d",
			m.selectedLease.ID,
			FormatAmount(m.stats.TotalPaid),
			FormatAmount(m.stats.TotalDue),
			FormatAmount(m.stats.Balance),
			m.stats.PendingCount,
			m.stats.LateCount,
			m.stats.UndefinedCount,
		))
}

func (m *LeasesModel) refreshListItems() {
	items := make([]list.Item, len(m.leases))
	for i, l := range m.leases {
		items[i] = leaseItem{lease: l}
	}

	m.list.SetItems(items)
}

// Messages

type loadLeasesMsg struct {
	leases []*lease.Lease
	err    error
}

func (m LeasesModel) loadLeasesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		leases, err := m.leaseService.List(ctx, lease.ListFilter{})

		return loadLeasesMsg{leases: leases, err: err}
	}
}

type loadStatsMsg struct {
	stats *lease.Stats
	err   error
}

func (m LeasesModel) loadStatsCmd(l *lease.Lease) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stats, err := m.leaseService.Stats(ctx, l.ID)

		return loadStatsMsg{stats: stats, err: err}
	}
}

type materializeResultMsg struct {
	created int
	err     error
}

func (m LeasesModel) materializeCmd(l *lease.Lease) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.paymentService.Materialize(ctx, payment.MaterializeParams{
			LeaseID:    l.ID,
			RentAmount: l.MonthlyRent,
			StartDate:  l.ScheduleStart(),
			Frequency:  l.Frequency,
		})
		if err != nil {
			return materializeResultMsg{err: err}
		}

		return materializeResultMsg{created: result.CreatedCount}
	}
}

// leaseItemDelegate renders items in the list.
type leaseItemDelegate struct{}

func (d leaseItemDelegate) Height() int                             { return 2 }
func (d leaseItemDelegate) Spacing() int                            { return 0 }
func (d leaseItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d leaseItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(leaseItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
