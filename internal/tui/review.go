// Package tui implements the draft review screen: pending drafts are listed
// for confirmation, and fallback drafts open as an editable form instead of a
// populated one.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/installment"
	"github.com/gastoclaro/gastoclaro/internal/model"
	"github.com/gastoclaro/gastoclaro/internal/service"
)

type viewState int

const (
	stateList viewState = iota
	stateEdit
)

// Field order in the edit form.
const (
	fieldAmount = iota
	fieldDescription
	fieldCategory
	fieldCostCenter
	fieldCount
)

const storageTimeout = 5 * time.Second

type draftsLoadedMsg []model.ExpenseDraft

type draftSavedMsg struct{ id string }

type errMsg struct{ err error }

// Model is the Bubble Tea model for the review screen.
type Model struct {
	store   service.Storage
	drafts  []model.ExpenseDraft
	inputs  []textinput.Model
	status  string
	cursor  int
	focus   int
	state   viewState
	err     error
	loading bool
}

// New creates a review model backed by the given storage.
func New(store service.Storage) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 120
	}
	inputs[fieldAmount].Placeholder = "0,00"
	inputs[fieldDescription].Placeholder = "descrição"
	inputs[fieldCategory].Placeholder = "categoria"
	inputs[fieldCostCenter].Placeholder = "centro de custo"

	return Model{
		store:   store,
		inputs:  inputs,
		state:   stateList,
		loading: true,
	}
}

// Run starts the review program and blocks until the user quits.
func Run(store service.Storage) error {
	p := tea.NewProgram(New(store))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review screen failed: %w", err)
	}
	return nil
}

// Init loads the pending drafts.
func (m Model) Init() tea.Cmd {
	return m.loadDrafts()
}

func (m Model) loadDrafts() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()

		drafts, err := m.store.ListDrafts(ctx, model.StatusPending)
		if err != nil {
			return errMsg{err}
		}
		return draftsLoadedMsg(drafts)
	}
}

func (m Model) saveDraft(draft model.ExpenseDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()

		if err := m.store.UpdateDraft(ctx, &draft); err != nil {
			return errMsg{err}
		}
		return draftSavedMsg{id: draft.ID}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case draftsLoadedMsg:
		m.drafts = msg
		m.loading = false
		if m.cursor >= len(m.drafts) {
			m.cursor = 0
		}
		return m, nil

	case draftSavedMsg:
		m.status = fmt.Sprintf("despesa %s confirmada", shortID(msg.id))
		m.state = stateList
		m.loading = true
		return m, m.loadDrafts()

	case errMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.state == stateEdit {
			return m.updateEdit(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.drafts)-1 {
			m.cursor++
		}
	case "r":
		m.loading = true
		return m, m.loadDrafts()
	case "enter":
		if len(m.drafts) == 0 {
			return m, nil
		}
		m.enterEdit(m.drafts[m.cursor])
		return m, textinput.Blink
	}
	return m, nil
}

// enterEdit populates the form. Fallback drafts open empty except for the
// transcript-derived description, so the user fills the form instead of
// correcting bogus values.
func (m *Model) enterEdit(draft model.ExpenseDraft) {
	if draft.IsFallback() {
		m.inputs[fieldAmount].SetValue("")
	} else {
		m.inputs[fieldAmount].SetValue(draft.Amount.StringFixed(2))
	}
	m.inputs[fieldDescription].SetValue(draft.Description)
	m.inputs[fieldCategory].SetValue(draft.Category)
	m.inputs[fieldCostCenter].SetValue(draft.CostCenter)

	m.focus = fieldAmount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
	m.state = stateEdit
	m.err = nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateList
		m.err = nil
		return m, nil
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "enter":
		if m.focus < fieldCount-1 {
			m.moveFocus(1)
			return m, nil
		}
		return m.submitEdit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	draft := m.drafts[m.cursor]

	amount, err := parseAmountInput(m.inputs[fieldAmount].Value())
	if err != nil || amount.IsNegative() {
		m.err = fmt.Errorf("valor inválido: %q", m.inputs[fieldAmount].Value())
		return m, nil
	}

	draft.Amount = amount.Round(2)
	draft.Description = strings.TrimSpace(m.inputs[fieldDescription].Value())
	draft.Category = strings.TrimSpace(m.inputs[fieldCategory].Value())
	draft.CostCenter = strings.TrimSpace(m.inputs[fieldCostCenter].Value())
	draft.Status = model.StatusConfirmed

	// Edited amounts need a fresh schedule with the same installment count.
	if draft.InstallmentCount < 1 {
		draft.InstallmentCount = 1
	}
	plan, err := installment.Plan(draft.Amount, draft.InstallmentCount, draft.Date)
	if err != nil {
		m.err = err
		return m, nil
	}
	draft.Installments = plan

	return m, m.saveDraft(draft)
}

// View renders the current screen.
func (m Model) View() string {
	if m.state == stateEdit {
		return m.viewEdit()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(cli.FormatTitle("Despesas pendentes"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(cli.SubtleStyle.Render("carregando..."))
	case len(m.drafts) == 0:
		b.WriteString(cli.InfoStyle.Render("Nenhuma despesa pendente."))
	default:
		for i, draft := range m.drafts {
			cursor := "  "
			line := fmt.Sprintf("R$ %s  %s", draft.Amount.StringFixed(2), draft.Description)
			if draft.IsFallback() {
				line = fmt.Sprintf("%s  %s", cli.WarningStyle.Render("não reconhecida"), draft.Description)
			}
			if i == m.cursor {
				cursor = cli.BoldStyle.Render("> ")
				line = cli.BoldStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + cli.FormatSuccess(m.status))
	}
	if m.err != nil {
		b.WriteString("\n" + cli.FormatError(m.err.Error()))
	}
	b.WriteString("\n" + cli.SubtleStyle.Render("↑/↓ navegar · enter editar · r recarregar · q sair"))
	return b.String()
}

func (m Model) viewEdit() string {
	draft := m.drafts[m.cursor]

	labels := []string{"Valor (R$)", "Descrição", "Categoria", "Centro de custo"}
	var rows []string
	for i, in := range m.inputs {
		label := cli.SubtleStyle.Render(fmt.Sprintf("%-16s", labels[i]))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, in.View()))
	}

	title := "Editar despesa"
	if draft.IsFallback() {
		title = "Completar despesa não reconhecida"
	}

	content := strings.Join(rows, "\n")
	if m.err != nil {
		content += "\n\n" + cli.FormatError(m.err.Error())
	}
	content += "\n\n" + cli.SubtleStyle.Render("tab próximo campo · enter confirmar · esc voltar")

	return cli.RenderBox(title, content)
}

// parseAmountInput reads a typed amount in Brazilian formatting: "," is the
// decimal mark and "." groups thousands ("1.300,50"). Plain dot decimals
// ("50.00", the pre-populated form value) are accepted too; a lone dot with
// exactly three trailing digits is read as a thousands separator.
func parseAmountInput(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ".") == 1:
		if idx := strings.Index(s, "."); len(s)-idx-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	return decimal.NewFromString(s)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
