package board

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobboard/internal/form"
	"github.com/amishk599/jobboard/internal/model"
	"github.com/amishk599/jobboard/internal/page"
)

// Post form field order.
const (
	fieldTitle = iota
	fieldCompany
	fieldLocation
	fieldJobType
	fieldSalary
	fieldDescription
)

// jobPostedMsg is sent when a job posting POST completes.
type jobPostedMsg struct {
	err error
}

type postFormModel struct {
	page    page.Context
	poster  model.JobPoster
	logger  *slog.Logger
	fields  fieldSet
	message string
	width   int

	wantQuit bool
}

func newPostFormModel(opts Options) postFormModel {
	opts = opts.withDefaults()
	m := postFormModel{
		page:   opts.Page,
		poster: opts.Client,
		logger: opts.Logger,
		fields: newFieldSet("Title", "Company", "Location", "Job type", "Salary", "Description"),
	}
	m.fields.focusAt(0)
	return m
}

func (m postFormModel) Init() tea.Cmd {
	return nil
}

func (m postFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case jobPostedMsg:
		m.message = form.PostOutcome(msg.err)
		if msg.err != nil {
			if form.IsTransport(msg.err) {
				m.logger.Error("post job failed", "error", msg.err)
			}
			return m, nil
		}
		m.logger.Info("job posted")
		return m, m.fields.reset()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.wantQuit = true
			return m, tea.Quit
		case "esc":
			m.wantQuit = false
			return m, tea.Quit
		case "tab", "down":
			return m, m.fields.move(1)
		case "shift+tab", "up":
			return m, m.fields.move(-1)
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.fields.onLast() {
				return m, m.submit()
			}
			return m, m.fields.move(1)
		}
		return m, m.fields.update(msg)
	}
	return m, nil
}

func (m postFormModel) postingFields() form.PostingFields {
	return form.PostingFields{
		Title:       m.fields.value(fieldTitle),
		Company:     m.fields.value(fieldCompany),
		Location:    m.fields.value(fieldLocation),
		JobType:     m.fields.value(fieldJobType),
		Salary:      m.fields.value(fieldSalary),
		Description: m.fields.value(fieldDescription),
	}
}

// submit validates the form and returns the command that posts it, or nil
// when validation fails. Field values are left as typed.
func (m *postFormModel) submit() tea.Cmd {
	if !m.page.Has(page.RegionPostForm) {
		return nil
	}
	m.message = ""

	posting, err := m.postingFields().Posting()
	if err != nil {
		m.message = form.PostOutcome(err)
		return nil
	}

	poster := m.poster
	return func() tea.Msg {
		return jobPostedMsg{err: poster.PostJob(context.Background(), posting)}
	}
}

func (m postFormModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Post a job"))
	b.WriteString("\n\n")
	b.WriteString(m.fields.view())
	if m.message != "" {
		b.WriteString("\n" + messageStyle.Render(m.message) + "\n")
	}
	b.WriteString("\n")
	status := " tab next field  enter on last field or ctrl+s submit  esc back  ctrl+c quit"
	b.WriteString(statusBarStyle.Width(m.width).Render(status))
	return b.String()
}

// RunPostForm launches the post-job form TUI.
// Returns wantQuit=true if the user pressed ctrl+c, false if they pressed esc to go back.
func RunPostForm(opts Options) (bool, error) {
	m := newPostFormModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(postFormModel)
	return final.wantQuit, nil
}
