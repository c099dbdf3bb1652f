package form

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amishk599/jobboard/internal/model"
)

func TestApplyFields_Application(t *testing.T) {
	tests := []struct {
		name    string
		fields  ApplyFields
		wantErr bool
	}{
		{"valid", ApplyFields{Name: "Ada", Email: "ada@example.com"}, false},
		{"empty name", ApplyFields{Email: "ada@example.com"}, true},
		{"empty email", ApplyFields{Name: "Ada"}, true},
		{"whitespace email", ApplyFields{Name: "Ada", Email: "   "}, true},
		{"whitespace name", ApplyFields{Name: "\t", Email: "ada@example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fields.Application(1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Application() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrApplicationIncomplete) {
				t.Errorf("expected ErrApplicationIncomplete, got %v", err)
			}
		})
	}
}

func TestApplyFields_TrimsAllFields(t *testing.T) {
	app, err := ApplyFields{
		Name:        "  Ada ",
		Email:       " ada@example.com\n",
		ResumeURL:   " https://example.com/cv ",
		CoverLetter: "  hello  ",
	}.Application(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Application{JobID: 42, Name: "Ada", Email: "ada@example.com", ResumeURL: "https://example.com/cv", CoverLetter: "hello"}
	if app != want {
		t.Errorf("Application() = %+v, want %+v", app, want)
	}
}

func TestPostingFields_Posting(t *testing.T) {
	p, err := PostingFields{Title: " Engineer ", Company: " Acme ", Salary: " 100k "}.Posting()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Engineer" || p.Company != "Acme" || p.Salary != "100k" {
		t.Errorf("fields not trimmed: %+v", p)
	}

	_, err = PostingFields{Title: "Engineer", Company: "  "}.Posting()
	if !errors.Is(err, ErrPostingIncomplete) {
		t.Errorf("expected ErrPostingIncomplete, got %v", err)
	}
}

func TestOutcomeMessages(t *testing.T) {
	transport := fmt.Errorf("apply to job 1: %w", errors.New("connection refused"))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"apply success", ApplyOutcome(nil), MsgApplicationSent},
		{"apply validation", ApplyOutcome(ErrApplicationIncomplete), MsgApplicationRequired},
		{"apply server message", ApplyOutcome(fmt.Errorf("x: %w", &model.APIError{StatusCode: 404, Message: "Job not found"})), "Job not found"},
		{"apply server fallback", ApplyOutcome(&model.APIError{StatusCode: 500}), MsgApplicationFailed},
		{"apply transport", ApplyOutcome(transport), MsgSomethingWrong},
		{"post success", PostOutcome(nil), MsgPostingSent},
		{"post validation", PostOutcome(ErrPostingIncomplete), MsgPostingRequired},
		{"post server message", PostOutcome(&model.APIError{StatusCode: 400, Message: "Company required"}), "Company required"},
		{"post server fallback", PostOutcome(&model.APIError{StatusCode: 400}), MsgPostingFailed},
		{"post transport", PostOutcome(transport), MsgSomethingWrong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestIsTransport(t *testing.T) {
	if IsTransport(nil) {
		t.Error("nil is not a transport error")
	}
	if IsTransport(ErrPostingIncomplete) {
		t.Error("validation error is not a transport error")
	}
	if IsTransport(&model.APIError{StatusCode: 400}) {
		t.Error("API error is not a transport error")
	}
	if !IsTransport(errors.New("dial tcp: connection refused")) {
		t.Error("plain error should be a transport error")
	}
}
