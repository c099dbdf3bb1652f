package board

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobboard/internal/page"
)

// PageChoice is one entry in the page picker.
type PageChoice struct {
	Label string
	Page  page.Context
}

// Pages are the pages offered by the picker, in display order.
var Pages = []PageChoice{
	{Label: "Browse jobs", Page: page.Board},
	{Label: "Post a job", Page: page.PostJob},
}

type pickerModel struct {
	choices  []PageChoice
	cursor   int
	selected *PageChoice // set once enter is pressed; nil after a quit
}

func newPickerModel(choices []PageChoice) pickerModel {
	return pickerModel{choices: choices}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.cursor = clamp(m.cursor-1, 0, len(m.choices)-1)
	case "down", "j":
		m.cursor = clamp(m.cursor+1, 0, len(m.choices)-1)
	case "enter":
		if len(m.choices) > 0 {
			choice := m.choices[m.cursor]
			m.selected = &choice
		}
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.selected = nil
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Job Board: where to?"))
	b.WriteByte('\n')
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(pickerSelectedStyle.Render("> " + c.Label))
		} else {
			b.WriteString(pickerItemStyle.Render(c.Label))
		}
		b.WriteByte('\n')
	}
	b.WriteString(pickerHintStyle.Render("↑/↓ choose  enter open  q quit"))
	return b.String()
}

// RunPagePicker asks which page to open. ok is false when the user quit.
func RunPagePicker(choices []PageChoice) (pg page.Context, ok bool, err error) {
	result, err := tea.NewProgram(newPickerModel(choices)).Run()
	if err != nil {
		return page.Context{}, false, err
	}
	if picked := result.(pickerModel).selected; picked != nil {
		return picked.Page, true, nil
	}
	return page.Context{}, false, nil
}
