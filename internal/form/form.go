// Package form holds the client-side gates and user-facing messages for the
// apply and post-job forms.
package form

import (
	"errors"
	"strings"

	"github.com/amishk599/jobboard/internal/model"
)

// Messages shown to the user.
const (
	MsgApplicationRequired = "Name and email are required."
	MsgApplicationSent     = "Application submitted ✅"
	MsgApplicationFailed   = "Failed to submit application."

	MsgPostingRequired = "Title and company are required."
	MsgPostingSent     = "Job posted successfully ✅"
	MsgPostingFailed   = "Failed to post job."

	MsgSomethingWrong = "Something went wrong."
)

var (
	ErrApplicationIncomplete = errors.New("name and email are required")
	ErrPostingIncomplete     = errors.New("title and company are required")
)

// ApplyFields are the raw values of the apply form.
type ApplyFields struct {
	Name        string
	Email       string
	ResumeURL   string
	CoverLetter string
}

// Application trims every field and returns the application for jobID, or
// ErrApplicationIncomplete when name or email is blank.
func (f ApplyFields) Application(jobID int64) (model.Application, error) {
	app := model.Application{
		JobID:       jobID,
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		ResumeURL:   strings.TrimSpace(f.ResumeURL),
		CoverLetter: strings.TrimSpace(f.CoverLetter),
	}
	if app.Name == "" || app.Email == "" {
		return model.Application{}, ErrApplicationIncomplete
	}
	return app, nil
}

// PostingFields are the raw values of the post-job form.
type PostingFields struct {
	Title       string
	Company     string
	Location    string
	JobType     string
	Salary      string
	Description string
}

// Posting trims every field and returns the posting, or ErrPostingIncomplete
// when title or company is blank. No other shape checks are made.
func (f PostingFields) Posting() (model.JobPosting, error) {
	p := model.JobPosting{
		Title:       strings.TrimSpace(f.Title),
		Company:     strings.TrimSpace(f.Company),
		Location:    strings.TrimSpace(f.Location),
		JobType:     strings.TrimSpace(f.JobType),
		Salary:      strings.TrimSpace(f.Salary),
		Description: strings.TrimSpace(f.Description),
	}
	if p.Title == "" || p.Company == "" {
		return model.JobPosting{}, ErrPostingIncomplete
	}
	return p, nil
}

// ApplyOutcome is the message for the result of submitting an application.
func ApplyOutcome(err error) string {
	return outcome(err, MsgApplicationSent, MsgApplicationRequired, MsgApplicationFailed)
}

// PostOutcome is the message for the result of submitting a job posting.
func PostOutcome(err error) string {
	return outcome(err, MsgPostingSent, MsgPostingRequired, MsgPostingFailed)
}

func outcome(err error, sent, required, failed string) string {
	if err == nil {
		return sent
	}
	if errors.Is(err, ErrApplicationIncomplete) || errors.Is(err, ErrPostingIncomplete) {
		return required
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return failed
	}
	return MsgSomethingWrong
}

// IsTransport reports whether err is a network or decoding failure rather than
// a server rejection or a local validation failure.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrApplicationIncomplete) || errors.Is(err, ErrPostingIncomplete) {
		return false
	}
	var apiErr *model.APIError
	return !errors.As(err, &apiErr)
}
