// Package form drives add/edit dialogs: it owns the draft, runs validation
// before any store call and turns outcomes into user-facing notices.
package form

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

type Operation string

const (
	OpAdd    Operation = "add"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

var pastTense = map[Operation]string{
	OpAdd:    "added",
	OpUpdate: "updated",
	OpDelete: "deleted",
}

var ErrNotOpen = errors.New("form is not open")

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the toast shown after a submit or delete.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

// ValidationNotice is the single notice raised for any failed validation.
var ValidationNotice = Notice{
	Kind:        NoticeError,
	Title:       "Validation Error",
	Description: "Please fill in all required fields",
}

func SuccessNotice(entity string, op Operation) Notice {
	return Notice{
		Kind:        NoticeSuccess,
		Title:       "Success",
		Description: Capitalize(entity) + " " + pastTense[op] + " successfully",
	}
}

// FailureNotice names the operation but never the underlying cause.
func FailureNotice(entity string, op Operation) Notice {
	return Notice{
		Kind:        NoticeError,
		Title:       "Error",
		Description: "Failed to " + string(op) + " " + entity,
	}
}

// Binding connects a controller to one entity's validation and store calls.
type Binding[D, R any] struct {
	Entity   string
	Empty    func() D
	Validate func(D) error
	Create   func(ctx context.Context, draft D) (R, error)
	Update   func(ctx context.Context, id string, draft D) (R, error)
}

// Controller holds dialog state for one entity form. It is not safe for
// concurrent use; each dialog (or HTTP request) owns its own controller.
type Controller[D, R any] struct {
	binding Binding[D, R]
	mode    Mode
	id      string
	draft   D
	open    bool
	notice  *Notice
}

func NewController[D, R any](binding Binding[D, R]) *Controller[D, R] {
	return &Controller[D, R]{
		binding: binding,
		mode:    ModeAdd,
		draft:   binding.Empty(),
	}
}

// OpenAdd opens the dialog with an empty draft.
func (c *Controller[D, R]) OpenAdd() {
	c.mode = ModeAdd
	c.id = ""
	c.draft = c.binding.Empty()
	c.open = true
	c.notice = nil
}

// OpenEdit opens the dialog with a draft initialized from an existing record.
func (c *Controller[D, R]) OpenEdit(id string, draft D) {
	c.mode = ModeEdit
	c.id = id
	c.draft = draft
	c.open = true
	c.notice = nil
}

// Edit mutates the draft in place.
func (c *Controller[D, R]) Edit(fn func(draft *D)) {
	fn(&c.draft)
}

// Close hides the dialog without touching the draft.
func (c *Controller[D, R]) Close() {
	c.open = false
}

func (c *Controller[D, R]) Draft() D {
	return c.draft
}

func (c *Controller[D, R]) Mode() Mode {
	return c.mode
}

func (c *Controller[D, R]) IsOpen() bool {
	return c.open
}

// RecordID is the id of the record being edited; empty in add mode.
func (c *Controller[D, R]) RecordID() string {
	return c.id
}

// Notice returns the notice raised by the last Submit, if any.
func (c *Controller[D, R]) Notice() (Notice, bool) {
	if c.notice == nil {
		return Notice{}, false
	}
	return *c.notice, true
}

func (c *Controller[D, R]) operation() Operation {
	if c.mode == ModeEdit {
		return OpUpdate
	}
	return OpAdd
}

// Submit validates the draft and writes it. On success the draft is cleared
// and the dialog closes; on any failure both are kept so the user can retry.
func (c *Controller[D, R]) Submit(ctx context.Context) (R, error) {
	var zero R
	if !c.open {
		return zero, ErrNotOpen
	}

	if err := c.binding.Validate(c.draft); err != nil {
		n := ValidationNotice
		c.notice = &n
		return zero, err
	}

	op := c.operation()
	var (
		result R
		err    error
	)
	if op == OpUpdate {
		result, err = c.binding.Update(ctx, c.id, c.draft)
	} else {
		result, err = c.binding.Create(ctx, c.draft)
	}
	if err != nil {
		slog.ErrorContext(ctx, "form submit failed",
			"entity", c.binding.Entity,
			"operation", string(op),
			"error", err,
		)
		n := FailureNotice(c.binding.Entity, op)
		c.notice = &n
		return zero, err
	}

	n := SuccessNotice(c.binding.Entity, op)
	c.notice = &n
	c.draft = c.binding.Empty()
	c.open = false
	return result, nil
}

// Delete runs a list-view delete and reports its notice.
func Delete(ctx context.Context, entity, id string, fn func(ctx context.Context, id string) error) (Notice, error) {
	if err := fn(ctx, id); err != nil {
		slog.ErrorContext(ctx, "delete failed", "entity", entity, "id", id, "error", err)
		return FailureNotice(entity, OpDelete), err
	}
	return SuccessNotice(entity, OpDelete), nil
}

// Capitalize upper-cases the first letter of s for user-facing messages.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
