package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/stauntonj/rently/cmd/tui/internal/view"
	"github.com/stauntonj/rently/internal/config"
	"github.com/stauntonj/rently/internal/database"
	"github.com/stauntonj/rently/internal/importer"
	"github.com/stauntonj/rently/internal/lease"
	leaseStore "github.com/stauntonj/rently/internal/lease/store"
	"github.com/stauntonj/rently/internal/payment"
	paymentStore "github.com/stauntonj/rently/internal/payment/store"
	"github.com/stauntonj/rently/internal/reconcile"
)

type model struct {
	leaseService     *lease.Service
	paymentService   *payment.Service
	importService    *importer.Service
	reconcileService *reconcile.Service

	currentView View

	leasesView    view.LeasesModel
	paymentsView  view.PaymentsModel
	reconcileView view.ReconcileModel
}

type View int

const (
	ViewMenu      View = 0
	ViewLeases    View = 1
	ViewPayments  View = 2
	ViewReconcile View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	paymentSvc := payment.NewService(paymentStore.New(db))
	leaseSvc := lease.NewService(leaseStore.New(db), paymentSvc)
	impSvc := importer.NewService()
	recSvc := reconcile.NewService(paymentSvc)

	return model{
		leaseService:     leaseSvc,
		paymentService:   paymentSvc,
		importService:    impSvc,
		reconcileService: recSvc,
		currentView:      ViewMenu,
		leasesView:       view.NewLeasesModel(leaseSvc, paymentSvc),
		paymentsView:     view.NewPaymentsModel(paymentSvc),
		reconcileView:    view.NewReconcileModel(impSvc, recSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLeases
				m.leasesView = view.NewLeasesModel(m.leaseService, m.paymentService)

				return m, m.leasesView.Init()
			case "2":
				m.currentView = ViewPayments
				m.paymentsView = view.NewPaymentsModel(m.paymentService)

				return m, m.paymentsView.Init()
			case "3":
				m.currentView = ViewReconcile
				m.reconcileView = view.NewReconcileModel(m.importService, m.reconcileService)

				return m, m.reconcileView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLeases:
		var newModel tea.Model
		newModel, cmd = m.leasesView.Update(msg)
		m.leasesView = newModel.(view.LeasesModel)
	case ViewPayments:
		var newModel tea.Model
		newModel, cmd = m.paymentsView.Update(msg)
		m.paymentsView = newModel.(view.PaymentsModel)
	case ViewReconcile:
		var newModel tea.Model
		newModel, cmd = m.reconcileView.Update(msg)
		m.reconcileView = newModel.(view.ReconcileModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Rently TUI\n\n" +
				"1. Manage Leases\n" +
				"2. Manage Payments\n" +
				"3. Reconcile Statement\n\n" +
				"q. Quit",
		)
	case ViewLeases:
		return m.leasesView.View()
	case ViewPayments:
		return m.paymentsView.View()
	case ViewReconcile:
		return m.reconcileView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
