package board

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobboard/internal/model"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// fetchTimeout bounds a single job list fetch.
const fetchTimeout = 2 * time.Minute

// jobsLoadedMsg is sent when the job list fetch completes.
type jobsLoadedMsg struct {
	jobs []model.Job
	err  error
}

type spinnerTickMsg struct{}

func fetchJobsCmd(lister model.JobLister) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		jobs, err := lister.ListJobs(ctx)
		return jobsLoadedMsg{jobs: jobs, err: err}
	}
}

func tickSpinner() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func renderSpinner(frame int, text string) string {
	return spinnerStyle.Render(spinnerFrames[frame%len(spinnerFrames)]) + " " + text
}
