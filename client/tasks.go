package client

import "strconv"

// CreateTask submits a new task and renders the server echo. The submitted
// form values are never rendered directly; the server assigns the id and
// normalizes the dates.
func (a *App) CreateTask(name, startDate, endDate string) {
	task, err := a.backend.CreateTask(a.state.ProjectID, name, startDate, endDate)
	if err != nil {
		a.fail("작업 추가 실패: ", err)
		return
	}
	a.state.AppendTask(task)
	a.RefreshStats()
}

// ToggleAccordion flips a task's detail panel. Every expand re-fetches the
// comment list; collapsed panels keep nothing warm.
func (a *App) ToggleAccordion(taskID int64) {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return
	}
	row.Expanded = !row.Expanded
	if row.Expanded {
		a.LoadComments(taskID)
	}
}

// EnterTaskEdit switches a task row to its edit form, pre-filled from the
// last server-confirmed record.
func (a *App) EnterTaskEdit(taskID int64) {
	if row := a.state.TaskByID(taskID); row != nil {
		row.Editing = true
	}
}

// CancelTaskEdit returns a task row to view mode without saving.
func (a *App) CancelTaskEdit(taskID int64) {
	if row := a.state.TaskByID(taskID); row != nil {
		row.Editing = false
	}
}

// SaveTaskEdit persists an edit. On success the row shows the echoed name
// and dates, leaves edit mode, and the chart picks up the new bar extents.
func (a *App) SaveTaskEdit(taskID int64, name, startDate, endDate string) {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return
	}
	task, err := a.backend.EditTask(taskID, name, startDate, endDate)
	if err != nil {
		a.fail("작업 수정 실패: ", err)
		return
	}
	row.Name = task.Name
	row.StartDate = task.StartDate
	row.EndDate = task.EndDate
	row.Editing = false
	a.chart.Redraw()
}

// DeleteTask removes a task after confirmation. Declining blocks the request
// entirely; success drops the row and refreshes the stats once.
func (a *App) DeleteTask(taskID int64) {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return
	}
	if !a.confirmer.Confirm("정말로 이 작업을 삭제하시겠습니까?") {
		return
	}
	if err := a.backend.DeleteTask(taskID); err != nil {
		a.fail("작업 삭제 실패: ", err)
		return
	}
	a.state.RemoveTask(taskID)
	a.RefreshStats()
}

// ChangeStatus persists a status change. Nothing mutates before the server
// confirms, so a refusal needs no rollback.
func (a *App) ChangeStatus(taskID int64, status string) {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return
	}
	newStatus, err := a.backend.UpdateTaskStatus(taskID, status)
	if err != nil {
		a.fail("상태 변경 실패: ", err)
		return
	}
	row.Status = newStatus
	a.chart.Redraw()
}

// AssignTask persists an assignee change and shows the server's message.
func (a *App) AssignTask(taskID int64, assigneeValue string) {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return
	}
	assigneeID, err := strconv.ParseInt(assigneeValue, 10, 64)
	if err != nil {
		return
	}
	name, message, err := a.backend.AssignTask(taskID, assigneeID)
	if err != nil {
		a.fail("담당자 지정 실패: ", err)
		return
	}
	row.AssigneeName = name
	a.alerter.Alert(message)
}
