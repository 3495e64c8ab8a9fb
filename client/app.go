package client

import (
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// Confirmer asks a blocking yes/no question before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// App is the project page controller. It owns the view state, the countdown,
// the chart, and the dispatcher that routes delegated events into the task,
// comment, and project subsystems.
type App struct {
	backend   Backend
	state     *PageState
	alerter   Alerter
	confirmer Confirmer
	countdown *Countdown
	chart     *ChartView
	logger    *zap.Logger

	dispatcher *Dispatcher
}

func NewApp(backend Backend, state *PageState, alerter Alerter, confirmer Confirmer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{
		backend:   backend,
		state:     state,
		alerter:   alerter,
		confirmer: confirmer,
		logger:    logger,
	}
	app.countdown = NewCountdown(func() (string, string) {
		return state.ProjectStart, state.ProjectEnd
	})
	app.chart = NewChartView(state.ProjectID, backend, logger)
	app.dispatcher = app.buildDispatcher()
	return app
}

// Start brings the page to life: countdown ticking and first chart draw.
func (a *App) Start() {
	a.countdown.Restart()
	a.chart.Redraw()
}

// Stop cancels the countdown loop.
func (a *App) Stop() {
	a.countdown.Stop()
}

// Dispatch feeds a delegated event into the page.
func (a *App) Dispatch(e Event) bool {
	return a.dispatcher.Dispatch(e)
}

// State exposes the view model for rendering.
func (a *App) State() *PageState {
	return a.state
}

// Chart exposes the chart view.
func (a *App) Chart() *ChartView {
	return a.chart
}

// Countdown exposes the countdown timer.
func (a *App) Countdown() *Countdown {
	return a.countdown
}

// buildDispatcher wires one rule table per event type. Registration order is
// the classification priority.
func (a *App) buildDispatcher() *Dispatcher {
	d := NewDispatcher()

	d.Bind(EventClick, ActionToggleAccordion, func(e Event) {
		a.ToggleAccordion(e.TaskID)
	})
	d.Bind(EventClick, ActionEditTask, func(e Event) {
		a.EnterTaskEdit(e.TaskID)
	})
	d.Bind(EventClick, ActionCancelEdit, func(e Event) {
		a.CancelTaskEdit(e.TaskID)
	})
	d.Bind(EventClick, ActionDeleteTask, func(e Event) {
		a.DeleteTask(e.TaskID)
	})
	d.Bind(EventClick, ActionCommentEdit, func(e Event) {
		a.EnterCommentEdit(e.TaskID, e.CommentID)
	})
	d.Bind(EventClick, ActionCancelCommentEdit, func(e Event) {
		a.CancelCommentEdit(e.TaskID, e.CommentID)
	})
	d.Bind(EventClick, ActionDeleteComment, func(e Event) {
		a.DeleteComment(e.TaskID, e.CommentID)
	})

	d.Bind(EventSubmit, ActionCreateTaskForm, func(e Event) {
		a.CreateTask(e.Value(transport.FieldTaskName), e.Value(transport.FieldStartDate), e.Value(transport.FieldEndDate))
	})
	d.Bind(EventSubmit, ActionEditTaskForm, func(e Event) {
		a.SaveTaskEdit(e.TaskID, e.Value(transport.FieldTaskName), e.Value(transport.FieldStartDate), e.Value(transport.FieldEndDate))
	})
	d.Bind(EventSubmit, ActionCommentForm, func(e Event) {
		a.AddComment(e.TaskID, e.Value(transport.FieldContent))
	})
	d.Bind(EventSubmit, ActionEditCommentForm, func(e Event) {
		a.SaveCommentEdit(e.TaskID, e.CommentID, e.Value(transport.FieldContent))
	})

	d.Bind(EventChange, ActionStatusSelect, func(e Event) {
		a.ChangeStatus(e.TaskID, e.Value(transport.FieldStatus))
	})
	d.Bind(EventChange, ActionAssigneeSelect, func(e Event) {
		a.AssignTask(e.TaskID, e.Value(transport.FieldAssigneeID))
	})

	return d
}

// fail routes an error to the right channel: refusals are alerted with the
// given prefix, transport failures are logged and the user sees nothing.
func (a *App) fail(prefix string, err error) {
	if be, ok := err.(*BusinessError); ok {
		a.alerter.Alert(prefix + be.Message)
		return
	}
	a.logger.Warn("request failed", zap.Error(err))
}
