package form

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"employee-directory/internal/client"
	"employee-directory/internal/models"
)

const MsgSubmitFailed = "Failed to submit the form. Please try again."

// Creator sends a validated draft to the backend. *client.Client
// satisfies it.
type Creator interface {
	CreateEmployee(ctx context.Context, d models.Draft) (string, error)
}

type State int

const (
	Editing State = iota
	Validating
	Submitting
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	default:
		return "editing"
	}
}

type OutcomeKind int

const (
	// Invalid: a rule failed, nothing was sent.
	Invalid OutcomeKind = iota + 1
	// Created: the backend accepted the draft.
	Created
	// Rejected: the backend answered with a non-success status.
	Rejected
	// Failed: no usable response reached us.
	Failed
)

// Outcome is what a submit attempt produced. The presentation layer
// decides how to show Message.
type Outcome struct {
	Kind       OutcomeKind
	Message    string
	Validation *ValidationError
	Err        error
}

func (o Outcome) Success() bool { return o.Kind == Created }

// Form holds one draft and drives it through validation and submission.
// A Form is not safe for concurrent use; each editor owns its own.
type Form struct {
	draft   models.Draft
	state   State
	creator Creator
	now     func() time.Time
	logger  zerolog.Logger
	// onCreated runs after a confirmed create, before the draft resets.
	onCreated []func(models.Draft)
}

type Option func(*Form)

// WithClock overrides time.Now for the date-of-joining rule.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(f *Form) { f.logger = l }
}

// OnCreated registers a callback fired after every successful create.
func OnCreated(fn func(models.Draft)) Option {
	return func(f *Form) { f.onCreated = append(f.onCreated, fn) }
}

func New(creator Creator, opts ...Option) *Form {
	f := &Form{
		creator: creator,
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Form) Draft() models.Draft { return f.draft }

func (f *Form) State() State { return f.state }

// Set replaces one field and leaves the rest as they are.
func (f *Form) Set(field, value string) error {
	next, err := f.draft.With(field, value)
	if err != nil {
		return err
	}
	f.draft = next
	f.state = Editing
	return nil
}

// Reset clears every field.
func (f *Form) Reset() {
	f.draft = models.Draft{}
	f.state = Editing
}

// Submit validates the draft and, if it passes, sends exactly one create
// request. The draft is cleared only on Created.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.state = Validating
	if verr := Validate(f.draft, f.now()); verr != nil {
		f.state = Editing
		return Outcome{Kind: Invalid, Message: verr.Message, Validation: verr}
	}

	f.state = Submitting
	msg, err := f.creator.CreateEmployee(ctx, f.draft)
	f.state = Editing

	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			f.logger.Warn().Int("status", apiErr.StatusCode).Str("error", apiErr.Message).
				Msg("employee create rejected")
			return Outcome{Kind: Rejected, Message: apiErr.Message, Err: err}
		}
		f.logger.Error().Err(err).Msg("error submitting form")
		return Outcome{Kind: Failed, Message: MsgSubmitFailed, Err: err}
	}

	for _, fn := range f.onCreated {
		fn(f.draft)
	}
	f.Reset()
	return Outcome{Kind: Created, Message: msg}
}
