package board

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobboard/internal/model"
)

// fakeBoard is an in-memory model.JobBoard that records submissions.
type fakeBoard struct {
	jobs     []model.Job
	listErr  error
	applyErr error
	postErr  error

	listCalls int
	applied   []model.Application
	posted    []model.JobPosting
}

func (f *fakeBoard) ListJobs(_ context.Context) ([]model.Job, error) {
	f.listCalls++
	return f.jobs, f.listErr
}

func (f *fakeBoard) Apply(_ context.Context, app model.Application) error {
	f.applied = append(f.applied, app)
	return f.applyErr
}

func (f *fakeBoard) PostJob(_ context.Context, p model.JobPosting) error {
	f.posted = append(f.posted, p)
	return f.postErr
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m boardModel, text string) boardModel {
	t.Helper()
	for _, r := range text {
		m, _ = updateBoard(t, m, key(string(r)))
	}
	return m
}

func updateBoard(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(boardModel)
	if !ok {
		t.Fatalf("Update returned %T, want boardModel", next)
	}
	return bm, cmd
}

func updatePost(t *testing.T, m postFormModel, msg tea.Msg) (postFormModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(postFormModel)
	if !ok {
		t.Fatalf("Update returned %T, want postFormModel", next)
	}
	return pm, cmd
}

var fixedNow = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
