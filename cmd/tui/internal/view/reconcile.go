package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stauntonj/rently/internal/importer"
	"github.com/stauntonj/rently/internal/reconcile"
)

const reconcileTimeout = 2 * time.Minute

type reconcileState int

const (
	reconcileStateFilePick reconcileState = iota
	reconcileStateRunning
	reconcileStateResult
)

type ReconcileModel struct {
	CommonModel
	importService    *importer.Service
	reconcileService *reconcile.Service

	state      reconcileState
	filePicker filepicker.Model

	result *reconcile.Result
	status string
	err    error
}

func NewReconcileModel(impSvc *importer.Service, recSvc *reconcile.Service) ReconcileModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ReconcileModel{
		importService:    impSvc,
		reconcileService: recSvc,
		filePicker:       fp,
	}
}

func (m ReconcileModel) Title() string { return "Reconcile Statement" }

func (m ReconcileModel) ShortHelp() string {
	switch m.state {
	case reconcileStateFilePick:
		return "Esc: back | Enter: select statement file"
	case reconcileStateResult:
		return "Esc: back"
	}

	return ""
}

func (m ReconcileModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ReconcileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == reconcileStateResult {
				m.state = reconcileStateFilePick
				m.result = nil
				m.err = nil

				return m, m.filePicker.Init()
			}

			return m, Back
		}

	case reconcileResultMsg:
		m.state = reconcileStateResult
		m.result = msg.result
		m.err = msg.err

		return m, nil
	}

	if m.state == reconcileStateFilePick {
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if ok, path := m.filePicker.DidSelectFile(msg); ok {
			m.state = reconcileStateRunning
			m.status = fmt.Sprintf("Reconciling %s...", path)

			return m, m.reconcileCmd(path)
		}

		return m, cmd
	}

	return m, nil
}

func (m ReconcileModel) View() string {
	switch m.state {
	case reconcileStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select a bank statement file:\n\n" + m.filePicker.View(),
		)

	case reconcileStateRunning:
		return lipgloss.NewStyle().Padding(2).Render(m.status)

	case reconcileStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
		}

		return lipgloss.NewStyle().Padding(1).Render(m.resultView())
	}

	return ""
}

func (m ReconcileModel) resultView() string {
	if m.result == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Matched %d entries, settled %d payments.\n\n", len(m.result.Matches), m.result.Settled)

	for _, match := range m.result.Matches {
		fmt.Fprintf(&b, "  %s  %s  -> payment due %s\n",
			FormatDate(match.Entry.Date), FormatAmount(match.Entry.Amount), FormatDate(match.Payment.DueDate))
	}

	if len(m.result.Unmatched) > 0 {
		fmt.Fprintf(&b, "\nUnmatched entries:\n")

		for _, e := range m.result.Unmatched {
			fmt.Fprintf(&b, "  %s  %s  %s\n", FormatDate(e.Date), FormatAmount(e.Amount), e.Reference)
		}
	}

	return b.String()
}

// Messages

type reconcileResultMsg struct {
	result *reconcile.Result
	err    error
}

func (m ReconcileModel) reconcileCmd(path string) tea.Cmd {
	impSvc := m.importService
	recSvc := m.reconcileService

	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return reconcileResultMsg{err: err}
		}
		defer file.Close()

		entries, err := impSvc.Import(importer.FormatStatement, file)
		if err != nil {
			return reconcileResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()

		result, err := recSvc.Reconcile(ctx, reconcile.Params{Entries: entries})

		return reconcileResultMsg{result: result, err: err}
	}
}
