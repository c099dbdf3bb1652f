package board

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobboard/internal/card"
	"github.com/amishk599/jobboard/internal/filter"
	"github.com/amishk599/jobboard/internal/model"
	"github.com/amishk599/jobboard/internal/page"
)

// Options configures a board or post-job page.
type Options struct {
	Page           page.Context
	Client         model.JobBoard
	Filters        filter.Criteria // initial filter values
	AutoCloseDelay time.Duration
	Logger         *slog.Logger
	Now            func() time.Time // defaults to time.Now
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type focusArea int

const (
	focusList focusArea = iota
	focusKeyword
	focusLocation
)

type boardModel struct {
	page   page.Context
	lister model.JobLister
	logger *slog.Logger
	now    func() time.Time

	// jobs is the held snapshot, replaced wholesale by each fetch.
	jobs []model.Job
	// cards is the rendered set; Apply acts on cards[cursor].Job.
	cards  []card.Card
	cursor int

	keyword  textinput.Model
	location textinput.Model
	focus    focusArea

	list       viewport.Model
	cardOffset []int // first line of each card within the list content
	width      int
	height     int
	ready      bool

	loading bool
	frame   int

	modal applyModal

	wantQuit bool
}

func newBoardModel(opts Options) boardModel {
	opts = opts.withDefaults()

	keyword := textinput.New()
	keyword.Prompt = ""
	keyword.Placeholder = "title, company, description"
	keyword.SetValue(opts.Filters.Keyword)

	location := textinput.New()
	location.Prompt = ""
	location.Placeholder = "location"
	location.SetValue(opts.Filters.Location)

	return boardModel{
		page:     opts.Page,
		lister:   opts.Client,
		logger:   opts.Logger,
		now:      opts.Now,
		keyword:  keyword,
		location: location,
		loading:  opts.Page.Has(page.RegionJobList),
		modal:    newApplyModal(opts.Client, opts.AutoCloseDelay, opts.Logger),
	}
}

func (m boardModel) Init() tea.Cmd {
	if !m.page.Has(page.RegionJobList) {
		return nil
	}
	return tea.Batch(fetchJobsCmd(m.lister), tickSpinner())
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case jobsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error("fetch jobs failed", "error", msg.err)
		} else {
			m.jobs = msg.jobs
			m.logger.Info("jobs loaded", "count", len(msg.jobs))
		}
		m.render()
		return m, nil

	case spinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		m.refreshList()
		return m, tickSpinner()

	case applySubmittedMsg:
		return m, m.modal.handleResult(msg)

	case autoCloseMsg:
		m.modal.close()
		return m, nil

	case tea.MouseMsg:
		if m.modal.isOpen() && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			!m.modal.contains(msg.X, msg.Y, m.width, m.height) {
			m.modal.close()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.wantQuit = true
			return m, tea.Quit
		}
		if m.modal.isOpen() {
			return m, m.modal.update(msg)
		}
		if m.focus != focusList {
			return m.updateFilterInput(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "b":
		m.wantQuit = false
		return m, tea.Quit
	case "/", "f":
		if !m.page.Has(page.RegionFilters) {
			return m, nil
		}
		m.focus = focusKeyword
		return m, m.keyword.Focus()
	case "x":
		m.clearFilters()
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "a", "enter":
		return m, m.openApply()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m boardModel) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurFilters()
		return m, nil
	case "tab", "shift+tab":
		if m.focus == focusKeyword {
			m.focus = focusLocation
			m.keyword.Blur()
			return m, m.location.Focus()
		}
		m.focus = focusKeyword
		m.location.Blur()
		return m, m.keyword.Focus()
	case "enter":
		m.blurFilters()
		m.render()
		return m, nil
	case "ctrl+x":
		m.blurFilters()
		m.clearFilters()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusKeyword {
		m.keyword, cmd = m.keyword.Update(msg)
	} else {
		m.location, cmd = m.location.Update(msg)
	}
	return m, cmd
}

func (m *boardModel) blurFilters() {
	m.keyword.Blur()
	m.location.Blur()
	m.focus = focusList
}

func (m *boardModel) clearFilters() {
	m.keyword.SetValue("")
	m.location.SetValue("")
	m.render()
}

// openApply opens the modal for the job on the selected card.
func (m *boardModel) openApply() tea.Cmd {
	if !m.page.Has(page.RegionApplyModal) || len(m.cards) == 0 {
		return nil
	}
	return m.modal.open(m.cards[m.cursor].Job)
}

// criteria reads the filter fields as they are now.
func (m boardModel) criteria() filter.Criteria {
	if !m.page.Has(page.RegionFilters) {
		return filter.Criteria{}
	}
	return filter.Criteria{Keyword: m.keyword.Value(), Location: m.location.Value()}
}

// render re-filters the held jobs and rebuilds the cards. It never fetches.
func (m *boardModel) render() {
	m.cards = card.Build(m.criteria().Apply(m.jobs), m.now())
	m.cursor = clamp(m.cursor, 0, max(len(m.cards)-1, 0))
	m.refreshList()
	m.list.SetYOffset(0)
	m.ensureCursorVisible()
}

func (m *boardModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.cards)-1, 0))
	m.refreshList()
	m.ensureCursorVisible()
}

func (m *boardModel) recalcLayout() {
	// Header (1) + filter bar (2) + border top/bottom (2) + status bar (1).
	overhead := 4
	if m.page.Has(page.RegionFilters) {
		overhead += 2
	}
	w := max(m.width-2, 30)
	h := max(m.height-overhead, 5)

	if !m.ready {
		m.list = viewport.New(w, h)
		m.ready = true
	} else {
		m.list.Width = w
		m.list.Height = h
	}
	m.refreshList()
	m.ensureCursorVisible()
}

func (m *boardModel) refreshList() {
	if !m.ready {
		return
	}
	if m.loading {
		m.cardOffset = nil
		m.list.SetContent("\n  " + renderSpinner(m.frame, "Loading jobs..."))
		return
	}
	if len(m.cards) == 0 {
		m.cardOffset = nil
		m.list.SetContent(card.RenderList(nil, m.list.Width, -1))
		return
	}

	var b strings.Builder
	m.cardOffset = make([]int, len(m.cards))
	line := 0
	for i, c := range m.cards {
		rendered := card.Render(c, m.list.Width, i == m.cursor)
		m.cardOffset[i] = line
		line += lipgloss.Height(rendered)
		b.WriteString(rendered)
		b.WriteByte('\n')
	}
	m.list.SetContent(b.String())
}

func (m *boardModel) ensureCursorVisible() {
	if len(m.cardOffset) == 0 {
		return
	}
	top := m.cardOffset[m.cursor]
	bottom := m.list.TotalLineCount() - 1
	if m.cursor+1 < len(m.cardOffset) {
		bottom = m.cardOffset[m.cursor+1] - 1
	}

	if top < m.list.YOffset {
		m.list.SetYOffset(top)
	} else if bottom >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(bottom - m.list.Height + 1)
	}
}

func (m boardModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.modal.isOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal.view(m.width))
	}
	return m.viewBoard()
}

func (m boardModel) viewBoard() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Job Board (%d)", len(m.cards))))
	b.WriteByte('\n')

	if m.page.Has(page.RegionFilters) {
		kwLabel, locLabel := labelStyle, labelStyle
		switch m.focus {
		case focusKeyword:
			kwLabel = activeLabelStyle
		case focusLocation:
			locLabel = activeLabelStyle
		}
		b.WriteString(kwLabel.Render("Keyword") + " " + m.keyword.View() + "\n")
		b.WriteString(locLabel.Render("Location") + " " + m.location.View() + "\n")
	}

	b.WriteString(listBorderStyle.Width(m.list.Width).Render(m.list.View()))
	b.WriteByte('\n')

	status := fmt.Sprintf(" %d of %d jobs    ↑/↓ select  a apply  / filter  x clear  esc back  q quit",
		len(m.cards), len(m.jobs))
	if m.focus != focusList {
		status = " enter filter  tab switch field  ctrl+x clear  esc done"
	}
	b.WriteString(statusBarStyle.Width(m.width).Render(status))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunBoard launches the job board TUI on the alt screen.
// Returns wantQuit=true if the user pressed q/ctrl+c, false if they pressed esc to go back.
func RunBoard(opts Options) (bool, error) {
	m := newBoardModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(boardModel)
	return final.wantQuit, nil
}
