package client

import (
	"testing"

	"github.com/KwonOil/easyplanner/api/transport"
)

func TestEditProjectPropagatesBounds(t *testing.T) {
	backend := &fakeBackend{
		editProjectResp: &transport.ProjectPayload{
			Name:      "출시 준비 v2",
			StartDate: "2099-02-01T00:00",
			EndDate:   "2099-03-01T00:00",
		},
		chartResp: ganttFixture(1),
	}
	app, _, _ := newTestApp(backend)
	app.OpenEditModal()

	app.EditProject("출시 준비 v2", "2099-02-01T00:00", "2099-03-01T00:00")

	state := app.State()
	if state.ProjectName != "출시 준비 v2" {
		t.Errorf("name = %q", state.ProjectName)
	}
	if state.ProjectStart != "2099-02-01T00:00" || state.ProjectEnd != "2099-03-01T00:00" {
		t.Errorf("bounds = %q..%q", state.ProjectStart, state.ProjectEnd)
	}
	if state.EditModalOpen {
		t.Error("modal still open after a successful edit")
	}
	if backend.chartCalls != 1 {
		t.Errorf("chart redraws = %d, want 1", backend.chartCalls)
	}
	if app.Countdown().ActiveLoops() != 1 {
		t.Errorf("countdown loops = %d, want 1", app.Countdown().ActiveLoops())
	}
	app.Stop()
}

func TestEditProjectFailureLeavesModalOpen(t *testing.T) {
	backend := &fakeBackend{editProjectErr: &BusinessError{Message: "수정할 권한이 없습니다."}}
	app, alerter, _ := newTestApp(backend)
	app.OpenEditModal()

	app.EditProject("x", "", "")

	state := app.State()
	if !state.EditModalOpen {
		t.Error("modal closed despite refusal")
	}
	if state.ProjectName != "출시 준비" {
		t.Error("name mutated despite refusal")
	}
	if len(alerter.messages) != 1 || alerter.messages[0] != "프로젝트 수정 실패: 수정할 권한이 없습니다." {
		t.Errorf("alerts = %v", alerter.messages)
	}
}

func TestInviteMemberAlwaysShowsMessage(t *testing.T) {
	t.Run("success clears form", func(t *testing.T) {
		backend := &fakeBackend{inviteMessage: "멤버를 초대했습니다."}
		app, alerter, _ := newTestApp(backend)

		if !app.InviteMember("minsu") {
			t.Error("expected success")
		}
		if len(alerter.messages) != 1 || alerter.messages[0] != "멤버를 초대했습니다." {
			t.Errorf("alerts = %v", alerter.messages)
		}
	})

	t.Run("refusal keeps form", func(t *testing.T) {
		backend := &fakeBackend{inviteErr: &BusinessError{Message: "이미 프로젝트 멤버입니다."}}
		app, alerter, _ := newTestApp(backend)

		if app.InviteMember("minsu") {
			t.Error("expected failure")
		}
		if len(alerter.messages) != 1 || alerter.messages[0] != "이미 프로젝트 멤버입니다." {
			t.Errorf("alerts = %v", alerter.messages)
		}
	})
}

func TestRefreshStatsUpdatesLabelAndRedraws(t *testing.T) {
	backend := &fakeBackend{statsResp: 67, chartResp: ganttFixture(1)}
	app, _, _ := newTestApp(backend)

	app.RefreshStats()

	state := app.State()
	if state.Progress != 67 {
		t.Errorf("progress = %d", state.Progress)
	}
	if state.ProgressLabel != "태스크 진행률: 67%" {
		t.Errorf("label = %q", state.ProgressLabel)
	}
	if backend.chartCalls != 1 {
		t.Errorf("chart redraws = %d, want 1", backend.chartCalls)
	}
}

func TestRefreshStatsRedrawsEvenOnStatsError(t *testing.T) {
	backend := &fakeBackend{statsErr: &BusinessError{Message: "권한이 없습니다."}, chartResp: ganttFixture(1)}
	app, _, _ := newTestApp(backend)

	app.RefreshStats()

	if backend.chartCalls != 1 {
		t.Errorf("chart redraws = %d, want 1 even when stats fail", backend.chartCalls)
	}
}
