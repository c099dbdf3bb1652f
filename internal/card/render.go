package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("39"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	companyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	postedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("24")).
			Padding(0, 1).
			MarginRight(1)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			Padding(1, 2)
)

// Render draws c inside a bordered box of the given outer width. The Apply
// hint is shown only on the selected card.
func Render(c Card, width int, selected bool) string {
	box := cardStyle
	if selected {
		box = selectedCardStyle
	}
	inner := max(width-box.GetHorizontalFrameSize(), 20)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(inner-lipgloss.Width(c.Posted)).Render(titleStyle.Render(c.Job.Title)),
		postedStyle.Render(c.Posted),
	)

	var badges []string
	for _, b := range c.Badges {
		badges = append(badges, badgeStyle.Render(b))
	}

	desc := descStyle.Width(inner).Render(c.Description)

	action := " "
	if selected {
		action = actionStyle.Render("[a] Apply")
	}

	body := strings.Join([]string{
		header,
		companyStyle.Render(c.Job.Company),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		desc,
		action,
	}, "\n")
	return box.Width(inner + box.GetHorizontalPadding()).Render(body)
}

// RenderList draws cards top to bottom, or the empty state when there are
// none. cursor < 0 selects nothing.
func RenderList(cards []Card, width, cursor int) string {
	if len(cards) == 0 {
		return emptyStyle.Render(EmptyState)
	}
	var b strings.Builder
	for i, c := range cards {
		b.WriteString(Render(c, width, i == cursor))
		b.WriteByte('\n')
	}
	return b.String()
}
