// Package card turns jobs into the cards shown on the board. Building a card is
// pure; rendering only applies lipgloss styles.
package card

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/amishk599/jobboard/internal/model"
)

const (
	// DescriptionLimit is the number of characters kept from a long description.
	DescriptionLimit = 140
	Ellipsis         = "..."
	NoDescription    = "No description provided."
	EmptyState       = "No jobs found."
)

// Card is the display form of one job. Job is the job captured when the card
// was built; actions on the card act on it rather than on a list position.
type Card struct {
	Job         model.Job
	Posted      string
	Badges      []string // location, job type, salary; only those present
	Description string
}

// New builds the card for job. now anchors the "Posted ..." label.
func New(job model.Job, now time.Time) Card {
	var badges []string
	for _, b := range []string{job.Location, job.JobType, job.Salary} {
		if b != "" {
			badges = append(badges, b)
		}
	}
	return Card{
		Job:         job,
		Posted:      postedLabel(job.CreatedAt, now),
		Badges:      badges,
		Description: Description(job.Description),
	}
}

// Build returns one card per job, in order.
func Build(jobs []model.Job, now time.Time) []Card {
	cards := make([]Card, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, New(j, now))
	}
	return cards
}

// Description returns the text shown for a job description: the placeholder
// when empty, the first DescriptionLimit characters plus Ellipsis when longer,
// otherwise the description itself.
func Description(desc string) string {
	if desc == "" {
		return NoDescription
	}
	runes := []rune(desc)
	if len(runes) > DescriptionLimit {
		return string(runes[:DescriptionLimit]) + Ellipsis
	}
	return desc
}

func postedLabel(createdAt *time.Time, now time.Time) string {
	if createdAt == nil {
		return "Posted"
	}
	// Zone-less timestamps from a server ahead of us would otherwise read as
	// "from now".
	created := *createdAt
	if created.After(now) {
		created = now
	}
	return "Posted " + humanize.RelTime(created, now, "ago", "from now")
}
