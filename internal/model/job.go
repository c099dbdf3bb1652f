package model

import (
	"context"
	"time"
)

// Job is a posted position as returned by GET /api/jobs.
// Optional string fields are empty when the server sent null or omitted them.
type Job struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	JobType     string     `json:"job_type"`
	Salary      string     `json:"salary"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"-"` // parsed from created_at by the api client
}

// Application is a candidate's submission against a single job.
// JobID travels in the URL path, not the body.
type Application struct {
	JobID       int64  `json:"-"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}

// JobPosting is a recruiter's new job submitted to POST /api/jobs.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
}

// JobLister fetches the current job collection.
type JobLister interface {
	ListJobs(ctx context.Context) ([]Job, error)
}

// ApplicationSubmitter sends one application.
type ApplicationSubmitter interface {
	Apply(ctx context.Context, app Application) error
}

// JobPoster sends one job posting.
type JobPoster interface {
	PostJob(ctx context.Context, posting JobPosting) error
}

// JobBoard is everything the UI needs from the backend.
type JobBoard interface {
	JobLister
	ApplicationSubmitter
	JobPoster
}
