package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobboard/internal/form"
	"github.com/amishk599/jobboard/internal/model"
)

type modalState int

const (
	modalClosed modalState = iota
	modalOpen
)

// Apply form field order.
const (
	fieldName = iota
	fieldEmail
	fieldResume
	fieldCover
)

// applySubmittedMsg is sent when an application POST completes.
type applySubmittedMsg struct {
	jobID int64
	err   error
}

// autoCloseMsg closes the modal after a successful submission. It is not tied
// to the submission that scheduled it.
type autoCloseMsg struct{}

// applyModal is the application overlay. It is closed until opened from a card.
type applyModal struct {
	state     modalState
	job       model.Job
	heading   string
	fields    fieldSet
	message   string
	submitter model.ApplicationSubmitter
	delay     time.Duration
	logger    *slog.Logger
}

func newApplyModal(submitter model.ApplicationSubmitter, delay time.Duration, logger *slog.Logger) applyModal {
	return applyModal{
		fields:    newFieldSet("Name", "Email", "Resume URL", "Cover letter"),
		submitter: submitter,
		delay:     delay,
		logger:    logger,
	}
}

func (m *applyModal) isOpen() bool {
	return m.state == modalOpen
}

// open shows the modal for job with every field and the message cleared.
func (m *applyModal) open(job model.Job) tea.Cmd {
	m.job = job
	m.heading = fmt.Sprintf("Apply for %s @ %s", job.Title, job.Company)
	m.message = ""
	m.state = modalOpen
	return m.fields.reset()
}

func (m *applyModal) close() {
	m.fields.blur()
	m.state = modalClosed
}

func (m *applyModal) applyFields() form.ApplyFields {
	return form.ApplyFields{
		Name:        m.fields.value(fieldName),
		Email:       m.fields.value(fieldEmail),
		ResumeURL:   m.fields.value(fieldResume),
		CoverLetter: m.fields.value(fieldCover),
	}
}

// submit validates the fields and returns the command that sends the
// application, or nil when the modal is closed or validation fails.
func (m *applyModal) submit() tea.Cmd {
	if !m.isOpen() {
		return nil
	}
	m.message = ""

	app, err := m.applyFields().Application(m.job.ID)
	if err != nil {
		m.message = form.ApplyOutcome(err)
		return nil
	}

	submitter := m.submitter
	return func() tea.Msg {
		err := submitter.Apply(context.Background(), app)
		return applySubmittedMsg{jobID: app.JobID, err: err}
	}
}

// handleResult shows the outcome and, on success, schedules the auto-close.
func (m *applyModal) handleResult(msg applySubmittedMsg) tea.Cmd {
	m.message = form.ApplyOutcome(msg.err)
	if msg.err != nil {
		if form.IsTransport(msg.err) {
			m.logger.Error("submit application failed", "job_id", msg.jobID, "error", msg.err)
		}
		return nil
	}
	m.logger.Info("application submitted", "job_id", msg.jobID)
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return autoCloseMsg{}
	})
}

func (m *applyModal) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.close()
		return nil
	case "tab", "down":
		return m.fields.move(1)
	case "shift+tab", "up":
		return m.fields.move(-1)
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.fields.onLast() {
			return m.submit()
		}
		return m.fields.move(1)
	}
	return m.fields.update(msg)
}

func (m applyModal) view(width int) string {
	var body string
	body += modalTitleStyle.Render(m.heading) + "\n"
	body += m.fields.view()
	if m.message != "" {
		body += "\n" + messageStyle.Render(m.message) + "\n"
	}
	body += "\n" + hintStyle.Render("tab next  enter/ctrl+s submit  esc cancel  click outside to close")
	return modalStyle.Width(min(max(width-8, 40), 72)).Render(body)
}

// boxBounds returns the top-left corner and size of the modal when centered
// on a width x height screen.
func (m applyModal) boxBounds(width, height int) (x, y, w, h int) {
	box := m.view(width)
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	return max((width-w)/2, 0), max((height-h)/2, 0), w, h
}

// contains reports whether the screen cell (px, py) falls on the modal box.
func (m applyModal) contains(px, py, width, height int) bool {
	x, y, w, h := m.boxBounds(width, height)
	return px >= x && px < x+w && py >= y && py < y+h
}
