package board

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldSet is an ordered group of labeled text inputs with one focused field.
type fieldSet struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldSet(labels ...string) fieldSet {
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(label)
		inputs[i] = ti
	}
	return fieldSet{labels: labels, inputs: inputs}
}

func (s *fieldSet) value(i int) string {
	return s.inputs[i].Value()
}

func (s *fieldSet) setValue(i int, v string) {
	s.inputs[i].SetValue(v)
}

// reset clears every field and focuses the first one.
func (s *fieldSet) reset() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	return s.focusAt(0)
}

func (s *fieldSet) focusAt(i int) tea.Cmd {
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
	s.focus = i
	return s.inputs[i].Focus()
}

func (s *fieldSet) blur() {
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
}

// move shifts focus by delta, wrapping around.
func (s *fieldSet) move(delta int) tea.Cmd {
	n := len(s.inputs)
	return s.focusAt(((s.focus+delta)%n + n) % n)
}

func (s *fieldSet) onLast() bool {
	return s.focus == len(s.inputs)-1
}

func (s *fieldSet) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s fieldSet) view() string {
	var b strings.Builder
	for i, label := range s.labels {
		st := labelStyle
		if i == s.focus && s.inputs[i].Focused() {
			st = activeLabelStyle
		}
		b.WriteString(st.Render(label))
		b.WriteByte(' ')
		b.WriteString(s.inputs[i].View())
		b.WriteByte('\n')
	}
	return b.String()
}
