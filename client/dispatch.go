package client

// EventType is the delegated DOM event class. One dispatcher rule table
// exists per type, and within a table rule order is priority order.
type EventType int

const (
	EventClick EventType = iota
	EventSubmit
	EventChange
)

// Action is the classification token carried by an interactive element.
type Action string

const (
	ActionToggleAccordion   Action = "toggle-accordion"
	ActionEditTask          Action = "edit-task"
	ActionCancelEdit        Action = "cancel-edit"
	ActionDeleteTask        Action = "delete-task"
	ActionCommentEdit       Action = "comment-edit"
	ActionCancelCommentEdit Action = "cancel-comment-edit"
	ActionDeleteComment     Action = "delete-comment"

	ActionCreateTaskForm  Action = "create-task-form"
	ActionEditTaskForm    Action = "edit-task-form"
	ActionCommentForm     Action = "comment-form"
	ActionEditCommentForm Action = "edit-comment-form"

	ActionStatusSelect   Action = "status-select"
	ActionAssigneeSelect Action = "assignee-select"
)

// Event is one delegated interaction. Actions lists the classification tokens
// found on the event target, innermost element first. Values carries the
// submitted form fields or the changed control's value.
type Event struct {
	Type      EventType
	Actions   []string
	TaskID    int64
	CommentID int64
	Values    map[string]string
}

// Value returns a submitted field, or "" when absent.
func (e Event) Value(name string) string {
	if e.Values == nil {
		return ""
	}
	return e.Values[name]
}

// Handler consumes a classified event.
type Handler func(Event)

type rule struct {
	action  Action
	handler Handler
}

// Dispatcher routes delegated events to handlers. Classification is mutually
// exclusive: rules are tried in registration order, the first whose action
// appears on the target wins, and an event matching no rule is dropped
// without error since containers hold non-interactive content too.
type Dispatcher struct {
	rules map[EventType][]rule
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		rules: make(map[EventType][]rule),
	}
}

// Bind registers a handler for an action. Registration order within an event
// type fixes the match priority.
func (d *Dispatcher) Bind(t EventType, a Action, h Handler) {
	d.rules[t] = append(d.rules[t], rule{action: a, handler: h})
}

// Dispatch classifies the event and invokes at most one handler. It reports
// whether any rule matched.
func (d *Dispatcher) Dispatch(e Event) bool {
	for _, r := range d.rules[e.Type] {
		if e.hasAction(r.action) {
			r.handler(e)
			return true
		}
	}
	return false
}

func (e Event) hasAction(a Action) bool {
	for _, got := range e.Actions {
		if got == string(a) {
			return true
		}
	}
	return false
}
