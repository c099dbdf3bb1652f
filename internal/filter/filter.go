package filter

import (
	"strings"

	"github.com/amishk599/jobboard/internal/model"
)

// Criteria is the board's keyword and location search. Both parts are
// case-insensitive substring matches; an empty part matches every job.
type Criteria struct {
	Keyword  string
	Location string
}

// Match reports whether the keyword occurs in "title company description" and
// the location occurs in the job's location.
func (c Criteria) Match(job model.Job) bool {
	keyword := strings.ToLower(c.Keyword)
	location := strings.ToLower(c.Location)

	if keyword != "" {
		text := strings.ToLower(job.Title + " " + job.Company + " " + job.Description)
		if !strings.Contains(text, keyword) {
			return false
		}
	}

	if location != "" {
		if !strings.Contains(strings.ToLower(job.Location), location) {
			return false
		}
	}

	return true
}

// Apply returns the matching jobs in their original order. jobs is not modified.
func (c Criteria) Apply(jobs []model.Job) []model.Job {
	matched := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if c.Match(j) {
			matched = append(matched, j)
		}
	}
	return matched
}

// IsEmpty reports whether the criteria match everything.
func (c Criteria) IsEmpty() bool {
	return c.Keyword == "" && c.Location == ""
}
