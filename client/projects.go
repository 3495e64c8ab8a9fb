package client

import "fmt"

// OpenEditModal shows the project edit dialog.
func (a *App) OpenEditModal() {
	a.state.EditModalOpen = true
}

// CloseEditModal hides the project edit dialog without saving.
func (a *App) CloseEditModal() {
	a.state.EditModalOpen = false
}

// EditProject persists project metadata. New bounds flow into the countdown
// and the chart, both of which re-initialize; the modal closes only on
// success so a refused edit stays on screen for retry.
func (a *App) EditProject(name, startDate, endDate string) {
	project, err := a.backend.EditProject(a.state.ProjectID, name, startDate, endDate)
	if err != nil {
		a.fail("프로젝트 수정 실패: ", err)
		return
	}
	a.state.ProjectName = project.Name
	a.state.ProjectStart = project.StartDate
	a.state.ProjectEnd = project.EndDate

	a.countdown.Restart()
	a.chart.Redraw()
	a.state.EditModalOpen = false
}

// InviteMember submits an invitation. The server's message is always shown;
// the form clears only when the invite went through.
func (a *App) InviteMember(username string) bool {
	message, err := a.backend.InviteMember(a.state.ProjectID, username)
	if err != nil {
		if be, ok := err.(*BusinessError); ok {
			a.alerter.Alert(be.Message)
		} else {
			a.fail("", err)
		}
		return false
	}
	a.alerter.Alert(message)
	return true
}

// RefreshStats pulls the completion percentage and then always redraws the
// chart, since whatever moved the stats may have moved bar extents too.
func (a *App) RefreshStats() {
	progress, err := a.backend.ProjectStats(a.state.ProjectID)
	if err != nil {
		a.fail("", err)
	} else {
		a.state.Progress = progress
		a.state.ProgressLabel = fmt.Sprintf("태스크 진행률: %d%%", progress)
	}
	a.chart.Redraw()
}
