package board

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobboard/internal/card"
	"github.com/amishk599/jobboard/internal/filter"
	"github.com/amishk599/jobboard/internal/model"
	"github.com/amishk599/jobboard/internal/page"
)

func sampleJobs() []model.Job {
	return []model.Job{
		{ID: 3, Title: "Backend Engineer", Company: "Acme", Location: "Remote"},
		{ID: 2, Title: "Designer", Company: "Beta", Location: "Berlin"},
		{ID: 1, Title: "Data Engineer", Company: "Gamma", Location: "Remote, EU", Description: "Pipelines"},
	}
}

// loadedBoard returns a sized board that has received jobs from fb.
func loadedBoard(t *testing.T, fb *fakeBoard, opts Options) boardModel {
	t.Helper()
	opts.Client = fb
	if opts.Page == (page.Context{}) {
		opts.Page = page.Board
	}
	if opts.AutoCloseDelay == 0 {
		opts.AutoCloseDelay = 10 * time.Millisecond
	}
	opts.Now = func() time.Time { return fixedNow }

	m := newBoardModel(opts)
	m, _ = updateBoard(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	msg := fetchJobsCmd(fb)()
	m, _ = updateBoard(t, m, msg)
	return m
}

func cardIDs(m boardModel) []int64 {
	var ids []int64
	for _, c := range m.cards {
		ids = append(ids, c.Job.ID)
	}
	return ids
}

func TestBoard_InitFetchesJobs(t *testing.T) {
	fb := &fakeBoard{jobs: sampleJobs()}
	m := newBoardModel(Options{Page: page.Board, Client: fb})

	if !m.loading {
		t.Error("expected board to start loading")
	}
	if m.Init() == nil {
		t.Fatal("expected Init to start the fetch")
	}

	msg := fetchJobsCmd(fb)()
	loaded, ok := msg.(jobsLoadedMsg)
	if !ok {
		t.Fatalf("fetch returned %T, want jobsLoadedMsg", msg)
	}
	if len(loaded.jobs) != 3 || fb.listCalls != 1 {
		t.Errorf("got %d jobs after %d calls", len(loaded.jobs), fb.listCalls)
	}
}

func TestBoard_NoJobListSkipsFetch(t *testing.T) {
	m := newBoardModel(Options{Page: page.New(page.RegionFilters), Client: &fakeBoard{}})
	if m.Init() != nil {
		t.Error("expected no fetch without a job list region")
	}
	if m.loading {
		t.Error("expected not loading without a job list region")
	}
}

func TestBoard_RendersAllJobsInServerOrder(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{})

	got := cardIDs(m)
	want := []int64{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("cards = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cards = %v, want %v", got, want)
		}
	}
}

func TestBoard_KeywordExample(t *testing.T) {
	fb := &fakeBoard{jobs: []model.Job{{ID: 1, Title: "Engineer", Company: "Acme", Location: "Remote"}}}
	m := loadedBoard(t, fb, Options{Filters: filter.Criteria{Keyword: "eng"}})

	if ids := cardIDs(m); len(ids) != 1 || ids[0] != 1 {
		t.Errorf("cards = %v, want [1]", ids)
	}
}

func TestBoard_FilterAppliesOnEnterOnly(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{})

	m, _ = updateBoard(t, m, key("/"))
	if m.focus != focusKeyword {
		t.Fatalf("focus = %v, want keyword", m.focus)
	}
	m = typeText(t, m, "engineer")
	if len(m.cards) != 3 {
		t.Errorf("typing re-filtered the list: %v", cardIDs(m))
	}

	m, _ = updateBoard(t, m, key("tab"))
	m = typeText(t, m, "eu")
	m, _ = updateBoard(t, m, key("enter"))

	if m.focus != focusList {
		t.Errorf("focus = %v, want list after enter", m.focus)
	}
	if ids := cardIDs(m); len(ids) != 1 || ids[0] != 1 {
		t.Errorf("cards = %v, want [1]", ids)
	}
}

func TestBoard_EmptyStateAndClear(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{Filters: filter.Criteria{Keyword: "nurse"}})

	if len(m.cards) != 0 {
		t.Fatalf("expected no cards, got %v", cardIDs(m))
	}
	if view := m.View(); !strings.Contains(view, card.EmptyState) {
		t.Errorf("expected empty state in view:\n%s", view)
	}

	m, _ = updateBoard(t, m, key("x"))
	if len(m.cards) != 3 {
		t.Errorf("expected all cards after clear, got %v", cardIDs(m))
	}
	if m.keyword.Value() != "" || m.location.Value() != "" {
		t.Error("expected filter fields to be cleared")
	}
	if view := m.View(); strings.Contains(view, card.EmptyState) {
		t.Error("empty state shown alongside cards")
	}
}

func TestBoard_FetchFailureLogsAndShowsEmpty(t *testing.T) {
	logger, buf := bufferLogger()
	fb := &fakeBoard{listErr: errors.New("connection refused")}
	m := loadedBoard(t, fb, Options{Logger: logger})

	if m.loading {
		t.Error("expected loading to stop after failure")
	}
	if len(m.jobs) != 0 || len(m.cards) != 0 {
		t.Errorf("expected empty list, got %d jobs", len(m.jobs))
	}
	if !strings.Contains(buf.String(), "fetch jobs failed") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}
	if view := m.View(); !strings.Contains(view, card.EmptyState) {
		t.Errorf("expected empty state in view:\n%s", view)
	}
}

func TestBoard_RefetchReplacesList(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{})

	m, _ = updateBoard(t, m, jobsLoadedMsg{jobs: []model.Job{{ID: 9, Title: "Nurse", Company: "Clinic"}}})
	if ids := cardIDs(m); len(ids) != 1 || ids[0] != 9 {
		t.Errorf("cards = %v, want [9]", ids)
	}
}

func TestBoard_ApplyBindsToRenderedJob(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{Filters: filter.Criteria{Location: "remote"}})

	// Rendered set is [3, 1]; the second card is job 1, which is third in the full list.
	m, _ = updateBoard(t, m, key("down"))
	m, _ = updateBoard(t, m, key("a"))

	if !m.modal.isOpen() {
		t.Fatal("expected modal to open")
	}
	if m.modal.job.ID != 1 {
		t.Errorf("modal job ID = %d, want 1", m.modal.job.ID)
	}
	if m.modal.heading != "Apply for Data Engineer @ Gamma" {
		t.Errorf("heading = %q", m.modal.heading)
	}
}

func TestBoard_ApplyWithoutModalRegion(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{Page: page.Listing})

	m, _ = updateBoard(t, m, key("a"))
	if m.modal.isOpen() {
		t.Error("modal opened on a page without an apply modal")
	}
}

func TestBoard_CursorClampedAfterFilter(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{jobs: sampleJobs()}, Options{})
	m, _ = updateBoard(t, m, key("down"))
	m, _ = updateBoard(t, m, key("down"))
	m, _ = updateBoard(t, m, key("down"))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	m.keyword.SetValue("backend")
	m.render()
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after narrowing", m.cursor)
	}
}

func TestBoard_QuitAndBack(t *testing.T) {
	m := loadedBoard(t, &fakeBoard{}, Options{})

	back, cmd := updateBoard(t, m, key("esc"))
	if cmd == nil || back.wantQuit {
		t.Error("esc should leave the page without quitting")
	}

	quit, cmd := updateBoard(t, m, key("q"))
	if cmd == nil || !quit.wantQuit {
		t.Error("q should quit")
	}
}
